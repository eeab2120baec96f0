package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	require.Len(t, deck, 52)
	points := 0
	for _, c := range deck {
		points += c.Points()
	}
	require.Equal(t, 26, points, "Thirteen hearts and the queen of spades")
	require.Equal(t, TwoOfClubs, deck[0])
	require.Equal(t, Card{Spades, Ace}, deck[51])
}

func TestCard(t *testing.T) {
	tests := []struct {
		card   Card
		kind   CardKind
		points int
		str    string
	}{
		{Card{Clubs, 2}, NumberCard, 0, "2C"},
		{Card{Hearts, 10}, NumberCard, 1, "10H"},
		{Card{Diamonds, Jack}, JackCard, 0, "JD"},
		{QueenOfSpades, QueenCard, 13, "QS"},
		{Card{Hearts, King}, KingCard, 1, "KH"},
		{Card{Spades, Ace}, AceCard, 0, "AS"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.kind, tt.card.Kind(), tt.str)
		require.Equal(t, tt.points, tt.card.Points(), tt.str)
		require.Equal(t, tt.str, tt.card.String())
	}
}

func TestDealRuleFor(t *testing.T) {
	for players := 3; players <= 7; players++ {
		rule, err := DealRuleFor(players)
		require.NoError(t, err)

		require.Equal(t, rule.DeckSize(), rule.HandSize*players, "%d players should use the whole prepared deck", players)
		require.False(t, slices.Contains(rule.Removed, TwoOfClubs))
	}

	_, err := DealRuleFor(2)
	require.ErrorIs(t, err, ErrConfig)
}
