package metrics

import (
	"encoding/csv"
	"jungle/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(10, 50)
	c.AddEpisode()
	c.AddEpisode()
	c.AddFullPlayout()
	c.AddDepth(3)
	c.AddDepth(1)

	metric := c.Complete(42)

	require.Equal(t, 10, metric.Simulations)
	require.Equal(t, 50, metric.Cutoff)
	require.Equal(t, 2, metric.Episodes)
	require.Equal(t, 1, metric.FullPlayouts)
	require.Equal(t, 3, metric.MaxDepth, "Depth should keep the maximum")
	require.Equal(t, 42, metric.TreeSize)

	c.Start(5, 5)
	require.Zero(t, c.Complete(1).Episodes, "Start should reset the counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(10, 50)
	c.AddEpisode()

	require.Equal(t, SearchMetric{}, c.Complete(7))
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "test")
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID:     1,
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			StartingSide: game.Red,
			Winner:       game.Green,
			StartTime:    start,
			EndTime:      start.Add(time.Second),
			Duration:     time.Second,
			TotalMoves:   12,
			Captures:     3,
		},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step: 1,
			Side: game.Red,
			Move: game.Move{From: game.Position{Row: 8, Col: 0}, To: game.Position{Row: 7, Col: 0}},
			SearchMetric: SearchMetric{
				Episodes: 100,
			},
		},
	}})
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Evaluator: "uniform", Simulations: 100, CPuct: 1.5}}))

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "1", "2", "red", "green", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12", "3"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, "(8,0)->(7,0)", moves[1][3])
	require.Equal(t, "100", moves[1][5])

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"1", "uniform", "100", "1.5", "0", "0"}, configs[1])
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}
