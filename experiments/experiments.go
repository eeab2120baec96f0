package experiments

import (
	"fmt"
	"sync"

	"hearts/agent"
	"hearts/engine"
	"hearts/experiments/metrics"
	"hearts/game"
	"hearts/meta"

	"github.com/rs/zerolog/log"
)

type result struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
	err    error
}

// Run plays the configured games and writes their records. Seats rotate
// between games so every agent gets to act from every position. It returns
// the directory the records were written to.
func Run(config meta.Config) (string, error) {
	if err := config.Validate(); err != nil {
		return "", err
	}
	exp := config.Experiment
	goroutines := exp.Goroutines
	if goroutines <= 0 {
		goroutines = 1
	}

	log.Info().Msgf("starting %s experiment with %d games on %d goroutines...", exp.Name, exp.Games, goroutines)

	results := make([]result, exp.Games)
	sem := make(chan struct{}, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < exp.Games; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = runGame(config, i)
		}(i)
	}
	wg.Wait()

	gameRecords := make([]metrics.GameRecord, 0, exp.Games)
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		if r.err != nil {
			return "", r.err
		}
		gameRecords = append(gameRecords, r.record)
		moveRecords = append(moveRecords, r.moves...)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays game i with seats rotated by i.
func runGame(config meta.Config, i int) result {
	n := config.Game.Players
	seats := make([]metrics.AgentConfig, n)
	for s := range seats {
		seats[s] = config.Experiment.Agents[(s+i)%n]
	}

	agents := make([]agent.Agent, n)
	ids := make([]int, n)
	for s, seat := range seats {
		a, err := createAgent(seat, config.Heuristic, config.Game.Seed+uint64(i*n+s))
		if err != nil {
			return result{err: err}
		}
		agents[s] = a
		ids[s] = seat.ID
	}

	gameConfig := config.Game
	gameConfig.Seed += uint64(i)
	e := engine.LocalEngine(gameConfig, agents, engine.WithMaxMoves(config.Experiment.MaxMoves), engine.WithMetrics())

	log.Info().Msgf("starting game %d of %d with agents %v...", i+1, config.Experiment.Games, ids)
	winners, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return result{err: fmt.Errorf("game %d: %w", i+1, err)}
	}
	log.Info().Msgf("completed game %d with winners %v and points %v", i+1, winners, gameMetric.Points)

	r := result{
		record: metrics.GameRecord{Game: i + 1, Agents: ids, GameMetric: gameMetric},
	}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
	}
	return r
}

func createAgent(config metrics.AgentConfig, hc game.HeuristicConfig, seed uint64) (agent.Agent, error) {
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(seed), nil
	case "greedy":
		evaluate, err := game.HeuristicByName(config.Heuristic, hc)
		if err != nil {
			return nil, err
		}
		return agent.NewGreedyAgent(evaluate, config.Samples, seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", game.ErrConfig, config.Kind)
	}
}
