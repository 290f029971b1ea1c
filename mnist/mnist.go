package mnist

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/rand"

	"splitscan/tensor"
)

const (
	ImageRows  = 28
	ImageCols  = 28
	NumClasses = 10

	TrainFile = "mnist_train.csv"
	TestFile  = "mnist_test.csv"
)

// Dataset holds the four parallel arrays of the MNIST data: training and
// test images as (N, 28, 28) tensors with pixels scaled to [0,1], and the
// integer class labels 0–9.
type Dataset struct {
	TrainImages *tensor.Tensor
	TrainLabels []int
	TestImages  *tensor.Tensor
	TestLabels  []int
}

// Load reads mnist_train.csv and mnist_test.csv from dir. The two files are
// independent and read concurrently.
func Load(dir string) (*Dataset, error) {
	ds := &Dataset{}
	p := pool.New().WithErrors()
	p.Go(func() error {
		images, labels, err := readCSV(filepath.Join(dir, TrainFile))
		if err != nil {
			return fmt.Errorf("loading training set: %w", err)
		}
		ds.TrainImages, ds.TrainLabels = images, labels
		return nil
	})
	p.Go(func() error {
		images, labels, err := readCSV(filepath.Join(dir, TestFile))
		if err != nil {
			return fmt.Errorf("loading test set: %w", err)
		}
		ds.TestImages, ds.TestLabels = images, labels
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

// readCSV parses one MNIST CSV file. The first value in each record is the
// label, the remaining 784 are pixel intensities in 0–255.
func readCSV(path string) (*tensor.Tensor, []int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	pixelsPerImage := ImageRows * ImageCols
	var pixels []float64
	var labels []int

	r := csv.NewReader(bufio.NewReader(file))
	recordNum := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		recordNum++
		if len(record) != pixelsPerImage+1 {
			return nil, nil, errInvalidRecord{recordNum: recordNum, fields: len(record), expected: pixelsPerImage + 1}
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: parsing label: %w", recordNum, err)
		}
		if label < 0 || label >= NumClasses {
			return nil, nil, fmt.Errorf("record %d: label %d out of range", recordNum, label)
		}
		labels = append(labels, label)

		for i := 0; i < pixelsPerImage; i++ {
			x, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("record %d: parsing pixel %d: %w", recordNum, i, err)
			}
			pixels = append(pixels, x/255.0)
		}
	}

	images := &tensor.Tensor{
		Data:  pixels,
		Shape: []int{len(labels), ImageRows, ImageCols},
	}
	return images, labels, nil
}

type errInvalidRecord struct {
	recordNum int
	fields    int
	expected  int
}

func (e errInvalidRecord) Error() string {
	return fmt.Sprintf("at record %d, expected %d values, got %d",
		e.recordNum, e.expected, e.fields)
}

// Synthetic generates n random (28, 28) images with labels, for tests and
// small dry runs. A given seed always yields the same data.
func Synthetic(n int, seed uint64) (*tensor.Tensor, []int) {
	rng := rand.New(rand.NewSource(seed))
	images := tensor.New(n, ImageRows, ImageCols)
	for i := range images.Data {
		images.Data[i] = rng.Float64()
	}
	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(NumClasses)
	}
	return images, labels
}
