package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Phase int

const (
	PassingPhase Phase = iota
	PlayingPhase
)

func (p Phase) String() string {
	switch p {
	case PassingPhase:
		return "PASSING"
	case PlayingPhase:
		return "PLAYING"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Config holds the parameters of a game.
type Config struct {
	Players        int    `yaml:"players"`
	PenaltyCeiling int    `yaml:"penalty_ceiling"`
	Seed           uint64 `yaml:"seed"`
}

type Option func(cfg *Config)

func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

func WithPenaltyCeiling(ceiling int) Option {
	return func(cfg *Config) {
		if ceiling > 0 {
			cfg.PenaltyCeiling = ceiling
		}
	}
}

// TrickCard is a card played to the current trick.
type TrickCard struct {
	Player int
	Card   Card
}

// GameState is the complete state of a game of Hearts. Everything is exported
// so callers (and tests) can inspect or build positions directly; mutation
// should go through Apply.
type GameState struct {
	Config        Config
	Phase         Phase
	Round         int         // Position in the passing cycle, 1..4
	CurrentPlayer int         // Player expected to act
	Leader        int         // Player who led (or will lead) the current trick
	Hands         [][]Card    // Cards held, per player
	DrawPile      []Card      // Undealt cards
	PendingPasses [][]Card    // Cards chosen for passing, per player
	PassCounts    []int       // Cards passed so far this round, per player
	Trick         []TrickCard // Trick in progress
	LeadSuit      Suit        // NoSuit until the first card of a trick
	HeartsBroken  bool
	FirstTrick    bool       // Two of clubs still to be led
	TrickPiles    [][]Card   // Resolved tricks not yet scored, per player
	WonCards      [][]Card   // Scored cards taken this round, per player
	TricksTaken   []int      // Tricks won this round, per player
	Points        []int      // Penalty points for the game, per player
	Results       []Result   // Set once the game ends
	Ended         bool
	LastMove      Move
	MoveCount     int
	rng           *rand.Rand
}

// NewGameState creates a game for the given number of players and deals the first round.
func NewGameState(players int, options ...Option) (*GameState, error) {
	cfg := Config{
		Players:        players,
		PenaltyCeiling: DefaultPenaltyCeiling,
	}
	for _, option := range options {
		option(&cfg)
	}
	return NewGameStateFromConfig(cfg)
}

func NewGameStateFromConfig(cfg Config) (*GameState, error) {
	if _, err := DealRuleFor(cfg.Players); err != nil {
		return nil, err
	}
	if cfg.PenaltyCeiling <= 0 {
		cfg.PenaltyCeiling = DefaultPenaltyCeiling
	}

	gs := &GameState{
		Config:  cfg,
		Round:   1,
		Points:  make([]int, cfg.Players),
		Results: make([]Result, cfg.Players),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	if err := gs.deal(); err != nil {
		return nil, err
	}
	return gs, nil
}

func (gs *GameState) random() *rand.Rand {
	if gs.rng == nil {
		gs.rng = rand.New(rand.NewSource(gs.Config.Seed))
	}
	return gs.rng
}

// NumPlayers returns the number of seats at the table.
func (gs GameState) NumPlayers() int {
	return len(gs.Hands)
}

// deal shuffles a fresh deck, hands out cards and resets all per-round state.
func (gs *GameState) deal() error {
	rule, err := DealRuleFor(gs.Config.Players)
	if err != nil {
		return err
	}

	deck := NewDeck()
	for _, c := range rule.Removed {
		deck = slices.DeleteFunc(deck, func(d Card) bool { return d == c })
	}
	rng := gs.random()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	n := gs.Config.Players
	gs.Hands = make([][]Card, n)
	for i := 0; i < n; i++ {
		gs.Hands[i] = slices.Clone(deck[:rule.HandSize])
		deck = deck[rule.HandSize:]
	}
	gs.DrawPile = slices.Clone(deck)

	gs.PendingPasses = make([][]Card, n)
	gs.PassCounts = make([]int, n)
	gs.TrickPiles = make([][]Card, n)
	gs.WonCards = make([][]Card, n)
	gs.TricksTaken = make([]int, n)
	gs.Trick = nil
	gs.LeadSuit = NoSuit
	gs.HeartsBroken = false
	gs.FirstTrick = true

	direction, err := gs.PassDirection()
	if err != nil {
		return err
	}
	if direction == 0 {
		return gs.startPlaying()
	}
	gs.Phase = PassingPhase
	gs.Leader = 0
	gs.CurrentPlayer = 0
	return nil
}

// Copy returns a deep copy of the state. No slice is shared with the receiver
// and the copy gets its own random source forked from the receiver's.
func (gs GameState) Copy() *GameState {
	seed := gs.random().Uint64()
	return &GameState{
		Config:        gs.Config,
		Phase:         gs.Phase,
		Round:         gs.Round,
		CurrentPlayer: gs.CurrentPlayer,
		Leader:        gs.Leader,
		Hands:         cloneCards(gs.Hands),
		DrawPile:      slices.Clone(gs.DrawPile),
		PendingPasses: cloneCards(gs.PendingPasses),
		PassCounts:    slices.Clone(gs.PassCounts),
		Trick:         slices.Clone(gs.Trick),
		LeadSuit:      gs.LeadSuit,
		HeartsBroken:  gs.HeartsBroken,
		FirstTrick:    gs.FirstTrick,
		TrickPiles:    cloneCards(gs.TrickPiles),
		WonCards:      cloneCards(gs.WonCards),
		TricksTaken:   slices.Clone(gs.TricksTaken),
		Points:        slices.Clone(gs.Points),
		Results:       slices.Clone(gs.Results),
		Ended:         gs.Ended,
		LastMove:      gs.LastMove,
		MoveCount:     gs.MoveCount,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

func cloneCards(piles [][]Card) [][]Card {
	if piles == nil {
		return nil
	}
	out := make([][]Card, len(piles))
	for i, pile := range piles {
		out[i] = slices.Clone(pile)
	}
	return out
}

// Apply checks that the move is legal, executes it and advances the state.
func (gs *GameState) Apply(move Move) error {
	if gs.Ended {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if !gs.IsLegal(move) {
		return fmt.Errorf("%w: %s in phase %s (player %d to act)", ErrIllegalMove, move, gs.Phase, gs.CurrentPlayer)
	}
	if !move.Execute(gs) {
		return fmt.Errorf("%w: player %d does not hold %s", ErrIllegalMove, move.Player, move.Card)
	}
	gs.LastMove = move
	gs.MoveCount++
	return gs.AfterAction(move)
}

// Play returns the state after the move, leaving the receiver untouched.
// It panics on illegal moves and is meant for rollouts over LegalMoves.
func (gs GameState) Play(move Move) *GameState {
	next := gs.Copy()
	if err := next.Apply(move); err != nil {
		panic(err)
	}
	return next
}

// Player returns the seat expected to act.
func (gs GameState) Player() int {
	return gs.CurrentPlayer
}

// CardCount returns the number of cards across every container of the round.
func (gs GameState) CardCount() int {
	total := len(gs.DrawPile) + len(gs.Trick)
	for i := range gs.Hands {
		total += len(gs.Hands[i])
	}
	for _, piles := range [][][]Card{gs.PendingPasses, gs.TrickPiles, gs.WonCards} {
		for _, pile := range piles {
			total += len(pile)
		}
	}
	return total
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}
	writeCards := func(cards []Card) {
		write(len(cards))
		for _, c := range cards {
			write(int(c.Suit))
			write(int(c.Rank))
		}
	}

	write(int(gs.Phase))
	write(gs.Round)
	write(gs.CurrentPlayer)
	write(int(gs.LeadSuit))
	if gs.HeartsBroken {
		write(1)
	} else {
		write(0)
	}
	for i := range gs.Hands {
		writeCards(gs.Hands[i])
	}
	for _, pending := range gs.PendingPasses {
		writeCards(pending)
	}
	for _, tc := range gs.Trick {
		write(tc.Player)
		write(int(tc.Card.Suit))
		write(int(tc.Card.Rank))
	}
	for _, pts := range gs.Points {
		write(pts)
	}

	return StateHash(hasher.Sum64())
}
