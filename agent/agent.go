package agent

import (
	"hearts/game"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the move to play for the player to act. It returns the
	// zero Move if there is nothing to play.
	FindMove(state *game.GameState) game.Move
}

var (
	_ Agent = (*randomAgent)(nil)
	_ Agent = (*greedyAgent)(nil)
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent choosing uniformly among the legal moves.
func NewRandomAgent(seed uint64) *randomAgent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}
	}
	return moves[a.rng.Intn(len(moves))]
}
