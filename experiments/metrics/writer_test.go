package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

type failingCloser struct {
	bytes.Buffer
	err error
}

func (f *failingCloser) Close() error {
	return f.err
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "difficulty")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "difficulty"), filepath.Dir(w.Dir()))

	t.Run("writes agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Difficulty: "easy"},
			{ID: 3, Difficulty: "hard", Depth: 4, Delay: 2 * time.Second},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "difficulty", "depth", "delay"},
			{"1", "easy", "0", "0s"},
			{"3", "hard", "4", "2s"},
		}, rows)
	})

	t.Run("writes game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    1,
			White: 2,
			Black: 3,
			GameMetric: GameMetric{
				StartingPlayer: "white",
				Winner:         "black",
				StartTime:      start,
				EndTime:        start.Add(time.Minute),
				Duration:       time.Minute,
				TotalMoves:     42,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "2", "3", "white", "black", "2024-01-02T03:04:05Z", "2024-01-02T03:05:05Z", "1m0s", "42"}, rows[1])
	})

	t.Run("writes move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         7,
				Player:       "black",
				SearchMetric: SearchMetric{Strategy: "minimax", Duration: time.Millisecond, Nodes: 120, Leaves: 96},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "player", "strategy", "duration", "nodes", "leaves"}, rows[0])
		require.Equal(t, []string{"1", "7", "black", "minimax", "1ms", "120", "96"}, rows[1])
	})

	t.Run("writes only the header without records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords(nil))
		require.Len(t, readCSV(t, filepath.Join(w.Dir(), "move_records.csv")), 1)
	})

	t.Run("reports a failed close", func(t *testing.T) {
		errClose := errors.New("disk full")
		file := &failingCloser{err: errClose}
		w := &Writer{baseDir: t.TempDir(), create: func(string) (io.WriteCloser, error) {
			return file, nil
		}}

		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Difficulty: "easy"}})

		require.ErrorIs(t, err, errClose)
		require.Contains(t, file.String(), "1,easy,0,0s", "Rows are flushed before closing")
	})
}
