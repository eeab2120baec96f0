// meta/meta.go
package meta

import (
	"fmt"
	"os"

	"hearts/experiments/metrics"
	"hearts/game"

	"gopkg.in/yaml.v3"
)

// GO_ROUTINES defines the number of games played concurrently.
const GO_ROUTINES = 4

// GAMES defines the number of games per experiment.
const GAMES = 30

// PLAYERS defines the default table size.
const PLAYERS = 4

// SAMPLES defines the determinized copies a greedy agent evaluates per move.
const SAMPLES = 8

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "results"

type ExperimentConfig struct {
	Name       string                `yaml:"name"`
	Games      int                   `yaml:"games"`
	Goroutines int                   `yaml:"goroutines"`
	MaxMoves   int                   `yaml:"max_moves"`
	OutputDir  string                `yaml:"output_dir"`
	Agents     []metrics.AgentConfig `yaml:"agents"`
}

type Config struct {
	Game       game.Config          `yaml:"game"`
	Heuristic  game.HeuristicConfig `yaml:"heuristic"`
	Experiment ExperimentConfig     `yaml:"experiment"`
}

// Default returns a table of greedy agents, one per heuristic, padded with
// random agents.
func Default() Config {
	return Config{
		Game: game.Config{
			Players:        PLAYERS,
			PenaltyCeiling: game.DefaultPenaltyCeiling,
			Seed:           1,
		},
		Heuristic: game.DefaultHeuristicConfig(),
		Experiment: ExperimentConfig{
			Name:       "heuristics",
			Games:      GAMES,
			Goroutines: GO_ROUTINES,
			OutputDir:  OUTPUT_DIR,
			Agents: []metrics.AgentConfig{
				{ID: 1, Kind: "random"},
				{ID: 2, Kind: "greedy", Heuristic: "score", Samples: SAMPLES},
				{ID: 3, Kind: "greedy", Heuristic: "score-tricks", Samples: SAMPLES},
				{ID: 4, Kind: "greedy", Heuristic: "tricks-high-cards", Samples: SAMPLES},
			},
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", game.ErrConfig, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %v", game.ErrConfig, path, err)
	}
	return config, config.Validate()
}

// Validate checks that the experiment can be played as configured.
func (c Config) Validate() error {
	if _, err := game.DealRuleFor(c.Game.Players); err != nil {
		return err
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", game.ErrConfig, c.Experiment.Games)
	}
	if len(c.Experiment.Agents) != c.Game.Players {
		return fmt.Errorf("%w: %d agents for %d players", game.ErrConfig, len(c.Experiment.Agents), c.Game.Players)
	}
	for _, a := range c.Experiment.Agents {
		switch a.Kind {
		case "random":
		case "greedy":
			if _, err := game.HeuristicByName(a.Heuristic, c.Heuristic); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", game.ErrConfig, a.ID, a.Kind)
		}
	}
	return nil
}
