package engine

import (
	"fmt"
	"time"

	"hearts/agent"
	"hearts/experiments/metrics"
	"hearts/game"
	"hearts/gamemaster"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

func WithMaxMoves(moves int) Option {
	return func(e *localEngine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

func WithMetrics() Option {
	return func(e *localEngine) {
		e.metrics = metrics.NewCollector()
	}
}

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	config   game.Config
	agents   []agent.Agent
	maxMoves int
	metrics  metrics.Collector
}

// LocalEngine seats one agent per player, in seat order.
func LocalEngine(config game.Config, agents []agent.Agent, options ...Option) *localEngine {
	if len(agents) != config.Players {
		panic(fmt.Sprintf("number of agents %d does not match number of players %d", len(agents), config.Players))
	}

	e := &localEngine{
		config:   config,
		agents:   agents,
		maxMoves: MaxMoves,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game ends.
func (e *localEngine) Run() ([]int, metrics.GameMetric, []metrics.MoveMetric, error) {
	master := gamemaster.NewLocalEngine(e.config)
	state, getUpdate, err := master.Init()
	if err != nil {
		return nil, metrics.GameMetric{}, nil, err
	}

	log.Info().Msgf("player %d is starting", state.CurrentPlayer)
	e.metrics.Start(state.CurrentPlayer)

	var moveMetrics []metrics.MoveMetric
	round := 1
	for step := 1; !state.Ended; step++ {
		if step > e.maxMoves {
			log.Warn().Msgf("stopped after %d moves without a winner, points %v", e.maxMoves, state.Points)
			break
		}

		player := state.CurrentPlayer
		start := time.Now()
		move := e.agents[player].FindMove(state.Copy())
		elapsed := time.Since(start)

		if err := master.Play(move); err != nil {
			return nil, e.metrics.Complete(state), moveMetrics, fmt.Errorf("player %d at move %d: %w", player, step, err)
		}
		played, hash, ok := getUpdate()
		if !ok || played != move {
			return nil, e.metrics.Complete(state), moveMetrics, fmt.Errorf("%w: no update for move %d", game.ErrInvariant, step)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   player,
			Round:    round,
			Action:   move.Action,
			Card:     move.Card,
			Hash:     hash,
			Duration: elapsed,
		})
		e.metrics.AddMove()

		next := master.State()
		if move.Action == game.PlayAction && len(next.Trick) == 0 {
			e.metrics.AddTrick()
			if !next.Ended && next.Round != state.Round {
				round++
				e.metrics.AddRound()
				log.Debug().Msgf("round %d dealt, points %v", round, next.Points)
			}
		}
		state = next
	}

	gameMetric := e.metrics.Complete(state)
	return state.Winners(), gameMetric, moveMetrics, nil
}
