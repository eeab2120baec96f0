package meta

import (
	"os"
	"path/filepath"
	"testing"

	"hearts/game"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
game:
  players: 3
  penalty_ceiling: 50
  seed: 7
heuristic:
  high_card_bonus: 2
experiment:
  games: 5
  agents:
    - {id: 1, kind: random}
    - {id: 2, kind: greedy, heuristic: high-cards, samples: 2}
    - {id: 3, kind: greedy, heuristic: none}
`)

	config, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, game.Config{Players: 3, PenaltyCeiling: 50, Seed: 7}, config.Game)
	require.Equal(t, 2.0, config.Heuristic.HighCardBonus)
	require.Equal(t, 26.0, config.Heuristic.MaxScore, "Unset fields keep their defaults")
	require.Equal(t, 5, config.Experiment.Games)
	require.Equal(t, GO_ROUTINES, config.Experiment.Goroutines)
	require.Len(t, config.Experiment.Agents, 3)
	require.Equal(t, "high-cards", config.Experiment.Agents[1].Heuristic)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "game: [players"},
		{"unsupported players", "game: {players: 8}"},
		{"agent count", "game: {players: 3}"},
		{"unknown heuristic", `
game: {players: 3}
experiment:
  agents: [{id: 1, kind: random}, {id: 2, kind: random}, {id: 3, kind: greedy, heuristic: lookahead}]
`},
		{"unknown kind", `
game: {players: 3}
experiment:
  agents: [{id: 1, kind: random}, {id: 2, kind: random}, {id: 3, kind: mcts}]
`},
		{"no games", "experiment: {games: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))

			require.ErrorIs(t, err, game.ErrConfig)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, game.ErrConfig)
}
