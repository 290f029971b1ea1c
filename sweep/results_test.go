package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadResults(t *testing.T) {
	res := &Results{
		Splits:  []float64{0.1, 0.5},
		Loss:    []float64{1.2, 1.1},
		ValLoss: []float64{1.3, 1.4},
		Acc:     []float64{0.6, 0.65},
		ValAcc:  []float64{0.55, 0.5},
	}
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, SaveResults(path, res))

	loaded, err := LoadResults(path)
	require.NoError(t, err)
	require.Equal(t, res, loaded)
}

func TestLoadResultsMissingFile(t *testing.T) {
	_, err := LoadResults(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadResultsEmptyDoc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0"}`), 0644))
	_, err := LoadResults(path)
	require.Error(t, err)
}
