package metrics

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errDiskFull
}

func TestWriteCSV(t *testing.T) {
	t.Run("reports flush errors", func(t *testing.T) {
		err := writeCSV(failingWriter{}, []string{"id"}, [][]string{{"1"}})
		require.ErrorIs(t, err, errDiskFull)
	})
}

func TestWriter(t *testing.T) {
	t.Run("writes one directory per experiment run", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "test")
		require.NoError(t, err)

		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 3, MoveMetric: MoveMetric{Step: 1, Player: "Black", Move: "(2, 3)", Flips: 1}}}))

		f, err := os.Open(filepath.Join(w.Dir(), "move_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, []string{"3", "1", "Black", "(2, 3)", "1"}, rows[1][:5])
	})

	t.Run("fails when the file cannot be created", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "test")
		require.NoError(t, err)
		require.NoError(t, os.Mkdir(filepath.Join(w.Dir(), "game_records.csv"), 0755))

		require.Error(t, w.WriteGameRecords(nil))
	})
}
