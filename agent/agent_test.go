package agent

import (
	"testing"

	"hearts/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// lastToPlay builds a 3 player state where player 2 completes a trick of
// hearts led by player 0 with the ten.
func lastToPlay() *game.GameState {
	return &game.GameState{
		Config:        game.Config{Players: 3, PenaltyCeiling: game.DefaultPenaltyCeiling},
		Phase:         game.PlayingPhase,
		Round:         1,
		CurrentPlayer: 2,
		Hands: [][]game.Card{
			{{Suit: game.Clubs, Rank: 9}},
			{{Suit: game.Clubs, Rank: 8}},
			{{Suit: game.Hearts, Rank: game.King}, {Suit: game.Hearts, Rank: 2}, {Suit: game.Clubs, Rank: 4}},
		},
		PendingPasses: make([][]game.Card, 3),
		PassCounts:    make([]int, 3),
		Trick: []game.TrickCard{
			{Player: 0, Card: game.Card{Suit: game.Hearts, Rank: 10}},
			{Player: 1, Card: game.Card{Suit: game.Hearts, Rank: 5}},
		},
		LeadSuit:     game.Hearts,
		HeartsBroken: true,
		TrickPiles:   make([][]game.Card, 3),
		WonCards:     make([][]game.Card, 3),
		TricksTaken:  make([]int, 3),
		Points:       make([]int, 3),
		Results:      make([]game.Result, 3),
	}
}

func TestRandomAgent(t *testing.T) {
	gs, err := game.NewGameState(4, game.WithSeed(5))
	require.NoError(t, err)
	a := NewRandomAgent(1)
	b := NewRandomAgent(1)

	for i := 0; i < 20; i++ {
		move := a.FindMove(gs)
		require.True(t, slices.Contains(gs.LegalMoves(), move))
		require.Equal(t, move, b.FindMove(gs), "Same seed should choose the same moves")
	}

	gs.Ended = true
	require.Equal(t, game.Move{}, a.FindMove(gs))
}

func TestGreedyAgent(t *testing.T) {
	t.Run("ducks under the lead", func(t *testing.T) {
		a := NewGreedyAgent(game.DefaultHeuristicConfig().EvaluateScore(), 3, 1)

		move := a.FindMove(lastToPlay())

		require.Equal(t, game.Play(2, game.Card{Suit: game.Hearts, Rank: 2}), move)
	})

	t.Run("leaves the state untouched", func(t *testing.T) {
		gs := lastToPlay()
		before := gs.Hash()

		NewGreedyAgent(game.DefaultHeuristicConfig().EvaluateScore(), 2, 1).FindMove(gs)

		require.Equal(t, before, gs.Hash())
	})

	t.Run("chooses a legal move without a heuristic", func(t *testing.T) {
		gs, err := game.NewGameState(5, game.WithSeed(2))
		require.NoError(t, err)

		move := NewGreedyAgent(nil, 0, 4).FindMove(gs)

		require.True(t, slices.Contains(gs.LegalMoves(), move))
	})

	t.Run("single legal move", func(t *testing.T) {
		gs := lastToPlay()
		gs.Hands[2] = []game.Card{{Suit: game.Hearts, Rank: game.King}, {Suit: game.Clubs, Rank: 4}}

		move := NewGreedyAgent(game.EvaluateNothing, 1, 1).FindMove(gs)

		require.Equal(t, game.Play(2, game.Card{Suit: game.Hearts, Rank: game.King}), move)
	})
}
