package game

import "fmt"

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NoSuit marks an unset lead suit at the start of a trick.
const NoSuit Suit = -1

var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "-"
	}
}

// Rank runs from 2 to 14 with the ace high.
type Rank int

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

type CardKind int

const (
	NumberCard CardKind = iota
	JackCard
	QueenCard
	KingCard
	AceCard
)

type Card struct {
	Suit Suit
	Rank Rank
}

var (
	TwoOfClubs    = Card{Suit: Clubs, Rank: 2}
	QueenOfSpades = Card{Suit: Spades, Rank: Queen}
)

func (c Card) Kind() CardKind {
	switch c.Rank {
	case Jack:
		return JackCard
	case Queen:
		return QueenCard
	case King:
		return KingCard
	case Ace:
		return AceCard
	default:
		return NumberCard
	}
}

// Points is the penalty value of a card once taken in a trick.
func (c Card) Points() int {
	if c.Suit == Hearts {
		return 1
	}
	if c == QueenOfSpades {
		return 13
	}
	return 0
}

func (c Card) String() string {
	var r string
	switch c.Rank {
	case Jack:
		r = "J"
	case Queen:
		r = "Q"
	case King:
		r = "K"
	case Ace:
		r = "A"
	default:
		r = fmt.Sprintf("%d", c.Rank)
	}
	return r + c.Suit.String()
}

// NewDeck returns the 52 cards ordered by suit then rank.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for r := Rank(2); r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// DealRule describes how the deck is prepared for a player count.
type DealRule struct {
	Removed  []Card
	HandSize int
}

var dealRules = map[int]DealRule{
	3: {Removed: []Card{{Diamonds, 2}}, HandSize: 17},
	4: {HandSize: 13},
	5: {Removed: []Card{{Diamonds, 2}, {Spades, 2}}, HandSize: 10},
	6: {Removed: []Card{{Diamonds, 2}, {Diamonds, 3}, {Clubs, 3}, {Clubs, 4}}, HandSize: 8},
	7: {Removed: []Card{{Diamonds, 2}, {Diamonds, 3}, {Clubs, 3}}, HandSize: 7},
}

// DealRuleFor returns the deck preparation rule for the given number of players.
func DealRuleFor(players int) (DealRule, error) {
	rule, ok := dealRules[players]
	if !ok {
		return DealRule{}, fmt.Errorf("%w: unsupported number of players %d (want 3-7)", ErrConfig, players)
	}
	return rule, nil
}

// DeckSize is the number of cards in play for the rule.
func (r DealRule) DeckSize() int {
	return 52 - len(r.Removed)
}
