package gamemaster

import (
	"fmt"

	"hearts/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// UpdateGetter returns the latest played move and the hash of the state it
// produced. ok is false when no update is pending or the game is over.
type UpdateGetter func() (move game.Move, hash game.StateHash, ok bool)

type Engine interface {
	Init() (*game.GameState, UpdateGetter, error)
	Play(game.Move) error
}

type update struct {
	move game.Move
	hash game.StateHash
}

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	config   game.Config
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalEngine(config game.Config) *localEngine {
	return &localEngine{config: config}
}

// Init deals a new game and returns a copy of its state.
func (e *localEngine) Init() (*game.GameState, UpdateGetter, error) {
	gs, err := game.NewGameStateFromConfig(e.config)
	if err != nil {
		return nil, nil, err
	}

	e.state = gs
	e.gameOver = false
	e.updateCh = make(chan update, 1)
	log.Debug().Msgf("dealt game for %d players, player %d to act", gs.NumPlayers(), gs.CurrentPlayer)

	updateCh := e.updateCh
	return e.state.Copy(), func() (game.Move, game.StateHash, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return game.Move{}, 0, false
			}
			return u.move, u.hash, true
		default:
			return game.Move{}, 0, false
		}
	}, nil
}

// State returns a copy of the current state.
func (e *localEngine) State() *game.GameState {
	return e.state.Copy()
}

// Play validates the move against the current state, applies it and
// publishes the update.
func (e *localEngine) Play(move game.Move) error {
	if e.state == nil {
		return fmt.Errorf("%w: game not initialized", game.ErrIllegalMove)
	}
	if e.gameOver {
		return fmt.Errorf("%w: game is over", game.ErrIllegalMove)
	}

	legalMoves := e.state.LegalMoves()
	if len(legalMoves) == 0 {
		return fmt.Errorf("%w: no legal moves available", game.ErrIllegalMove)
	}
	if !slices.Contains(legalMoves, move) {
		log.Debug().Msgf("rejected %s from player %d, player %d to act", move, move.Player, e.state.CurrentPlayer)
		return fmt.Errorf("%w: %s", game.ErrIllegalMove, move)
	}

	if err := e.state.Apply(move); err != nil {
		return err
	}
	e.publish(update{move: move, hash: e.state.Hash()})

	if e.state.Ended {
		e.gameOver = true
		close(e.updateCh)
		log.Info().Msgf("game over after %d moves, points %v, winners %v", e.state.MoveCount, e.state.Points, e.state.Winners())
	}
	return nil
}

// publish keeps only the latest update so Play never blocks on a slow reader.
func (e *localEngine) publish(u update) {
	for {
		select {
		case e.updateCh <- u:
			return
		default:
			select {
			case <-e.updateCh:
			default:
			}
		}
	}
}
