package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeuristicFactors(t *testing.T) {
	hc := DefaultHeuristicConfig()
	gs := newPlayingState(
		[]Card{{Spades, Ace}, {Hearts, Queen}, {Clubs, Jack}, {Diamonds, 4}},
		[]Card{{Clubs, 2}},
	)
	gs.Points = []int{13, 0}
	gs.TricksTaken = []int{0, 13}

	require.InDelta(t, 0.5, hc.ScoreFactor(gs, 0), 1e-9)
	require.InDelta(t, 1.0, hc.ScoreFactor(gs, 1), 1e-9)
	require.InDelta(t, 1.0, hc.TricksFactor(gs, 0), 1e-9)
	require.InDelta(t, 0.0, hc.TricksFactor(gs, 1), 1e-9)
	require.InDelta(t, 12.0/14*1.6, hc.HighCardFactor(gs, 0), 1e-9, "Jack is not above the threshold")
	require.InDelta(t, 1.6, hc.HighCardFactor(gs, 1), 1e-9)

	hc.MaxHighValueCards = 2
	require.Zero(t, hc.HighCardFactor(gs, 0), "At or over the cap")
}

func TestHeuristicByName(t *testing.T) {
	hc := DefaultHeuristicConfig()
	gs := newPlayingState([]Card{{Spades, Ace}}, []Card{{Clubs, 2}})
	gs.Points = []int{13, 0}
	gs.TricksTaken = []int{1, 0}

	tests := []struct {
		name string
		want float64
	}{
		{"none", 0},
		{"", 0.5},
		{"score", 0.5},
		{"high-cards", 0.5 + 13.0/14*1.6},
		{"score-tricks", 0.5 + 12.0/13},
		{"tricks-high-cards", 12.0/13 + 13.0/14*1.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluate, err := HeuristicByName(tt.name, hc)
			require.NoError(t, err)
			require.InDelta(t, tt.want, evaluate(gs, 0), 1e-9)
		})
	}

	_, err := HeuristicByName("mcts", hc)
	require.ErrorIs(t, err, ErrConfig)
}
