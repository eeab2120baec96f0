package agent

import (
	"hearts/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type greedyAgent struct {
	evaluate game.Evaluate
	samples  int
	rng      *rand.Rand
}

// NewGreedyAgent returns an agent that looks one move ahead. Each legal move
// is played on samples determinized copies of the state, as seen by the
// player, and the move with the best average evaluation wins. Ties are broken
// at random.
func NewGreedyAgent(evaluate game.Evaluate, samples int, seed uint64) *greedyAgent {
	if evaluate == nil {
		evaluate = game.EvaluateNothing
	}
	if samples <= 0 {
		samples = 1
	}
	return &greedyAgent{
		evaluate: evaluate,
		samples:  samples,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *greedyAgent) FindMove(state *game.GameState) game.Move {
	moves := state.LegalMoves()
	if len(moves) <= 1 {
		if len(moves) == 0 {
			return game.Move{}
		}
		return moves[0]
	}

	player := state.CurrentPlayer
	var best []game.Move
	bestValue := 0.0
	for _, move := range moves {
		value, err := a.value(state, player, move)
		if err != nil {
			log.Warn().Err(err).Msgf("skipping %s", move)
			continue
		}
		switch {
		case len(best) == 0 || value > bestValue:
			best = []game.Move{move}
			bestValue = value
		case value == bestValue:
			best = append(best, move)
		}
	}
	if len(best) == 0 {
		return moves[a.rng.Intn(len(moves))]
	}
	return best[a.rng.Intn(len(best))]
}

// value averages the evaluation of the move over determinized copies.
func (a *greedyAgent) value(state *game.GameState, player int, move game.Move) (float64, error) {
	total := 0.0
	for i := 0; i < a.samples; i++ {
		sample, err := state.CopyFor(player)
		if err != nil {
			return 0, err
		}
		if err := sample.Apply(move); err != nil {
			return 0, err
		}
		total += a.evaluate(sample, player)
	}
	return total / float64(a.samples), nil
}
