package mnist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeCSV writes records of the form "label,p0,...,p783" with every pixel
// set to the same value.
func writeCSV(t *testing.T, path string, labels []int, pixel int) {
	t.Helper()
	var sb strings.Builder
	for _, label := range labels {
		sb.WriteString(fmt.Sprintf("%d", label))
		sb.WriteString(strings.Repeat(fmt.Sprintf(",%d", pixel), ImageRows*ImageCols))
		sb.WriteString("\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, filepath.Join(dir, TrainFile), []int{5, 0, 9}, 255)
	writeCSV(t, filepath.Join(dir, TestFile), []int{1, 2}, 51)

	ds, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, []int{3, ImageRows, ImageCols}, ds.TrainImages.Shape)
	require.Equal(t, []int{5, 0, 9}, ds.TrainLabels)
	require.Equal(t, []int{2, ImageRows, ImageCols}, ds.TestImages.Shape)
	require.Equal(t, []int{1, 2}, ds.TestLabels)

	// pixels scaled to [0,1]
	require.InDelta(t, 1.0, ds.TrainImages.At(0, 0, 0), 1e-12)
	require.InDelta(t, 0.2, ds.TestImages.At(1, 27, 27), 1e-12)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, filepath.Join(dir, TrainFile), []int{1}, 0)
	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "test set")
}

func TestReadCSVShortRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("3,0,0,0\n"), 0644))
	_, _, err := readCSV(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 785 values")
}

func TestReadCSVBadLabel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	record := "12" + strings.Repeat(",0", ImageRows*ImageCols) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(record), 0644))
	_, _, err := readCSV(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestSynthetic(t *testing.T) {
	images, labels := Synthetic(50, 11)
	require.Equal(t, []int{50, ImageRows, ImageCols}, images.Shape)
	require.Len(t, labels, 50)
	for _, v := range images.Data {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
	for _, l := range labels {
		require.GreaterOrEqual(t, l, 0)
		require.Less(t, l, NumClasses)
	}

	// deterministic for a fixed seed
	images2, labels2 := Synthetic(50, 11)
	require.Equal(t, images.Data, images2.Data)
	require.Equal(t, labels, labels2)
}
