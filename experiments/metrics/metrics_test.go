package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hearts/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	gs, err := game.NewGameState(4, game.WithSeed(1))
	require.NoError(t, err)
	gs.Points = []int{10, 40, 10, 101}
	gs.Ended = true
	gs.Results = []game.Result{game.Draw, game.Loss, game.Draw, game.Loss}

	c := NewCollector()
	c.Start(2)
	for i := 0; i < 5; i++ {
		c.AddMove()
	}
	c.AddTrick()
	c.AddRound()

	m := c.Complete(gs)

	_, err = uuid.Parse(m.ID)
	require.NoError(t, err, "Game ID should be a UUID")
	require.Equal(t, 2, m.StartingPlayer)
	require.Equal(t, 5, m.TotalMoves)
	require.Equal(t, 1, m.Tricks)
	require.Equal(t, 2, m.Rounds, "Counting starts at the first deal")
	require.Equal(t, []int{0, 2}, m.Winners)
	require.Equal(t, gs.Points, m.Points)
	require.True(t, m.Completed)
	require.False(t, m.EndTime.Before(m.StartTime))

	gs.Points[0] = 0
	require.Equal(t, 10, m.Points[0], "Points are copied")
}

func TestDummyCollector(t *testing.T) {
	gs, err := game.NewGameState(3)
	require.NoError(t, err)
	c := NewDummyCollector()
	c.Start(0)
	c.AddMove()

	m := c.Complete(gs)

	require.Zero(t, m.TotalMoves)
	require.False(t, m.Completed)
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "smoke")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "greedy", Heuristic: "score", Samples: 4}}))
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Game:   1,
		Agents: []int{1, 2, 1},
		GameMetric: GameMetric{
			ID:         "id",
			Winners:    []int{0, 2},
			Points:     []int{20, 104, 20},
			Rounds:     5,
			Tricks:     85,
			StartTime:  start,
			EndTime:    start.Add(time.Second),
			Duration:   time.Second,
			TotalMoves: 300,
			Completed:  true,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:   1,
			Player: 0,
			Round:  1,
			Action: game.PassAction,
			Card:   game.QueenOfSpades,
			Hash:   255,
		},
	}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "kind", "heuristic", "samples"}, {"1", "greedy", "score", "4"}}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "id", "1;2;1", "0", "0;2", "20;104;20", "5", "85", "300", "true", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "1", "0", "1", "pass", "QS", "ff", "0s"}, moves[1])
}
