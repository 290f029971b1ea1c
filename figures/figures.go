package figures

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Fixed base names of the two comparison figures. Each is written as both a
// PDF and a PNG.
const (
	AccuracyBaseName = "ValidationSplit_MLP_accuracy"
	LossBaseName     = "ValidationSplit_MLP_loss"
)

const xLabel = "Validation sample fraction"

// SaveAccuracy renders the accuracy-vs-split figure into dir and returns the
// paths written. The directory must already exist.
func SaveAccuracy(dir string, splits, train, validate []float64) ([]string, error) {
	return save(dir, AccuracyBaseName, "model accuracy", "accuracy", splits, train, validate)
}

// SaveLoss renders the loss-vs-split figure into dir and returns the paths
// written.
func SaveLoss(dir string, splits, train, validate []float64) ([]string, error) {
	return save(dir, LossBaseName, "model loss", "loss", splits, train, validate)
}

func save(dir, base, title, yLabel string, splits, train, validate []float64) ([]string, error) {
	if len(train) != len(splits) || len(validate) != len(splits) {
		return nil, fmt.Errorf("%s: got %d splits, %d train and %d validate values",
			base, len(splits), len(train), len(validate))
	}

	// a fresh plot per figure, so figures cannot contaminate each other
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	trainLine, err := plotter.NewLine(xys(splits, train))
	if err != nil {
		return nil, fmt.Errorf("%s: train curve: %w", base, err)
	}
	trainLine.Color = plotutil.Color(0)
	valLine, err := plotter.NewLine(xys(splits, validate))
	if err != nil {
		return nil, fmt.Errorf("%s: validate curve: %w", base, err)
	}
	valLine.Color = plotutil.Color(1)

	p.Add(trainLine, valLine)
	p.Legend.Add("train", trainLine)
	p.Legend.Add("validate", valLine)
	p.Legend.Top = true
	p.Legend.Left = true

	var paths []string
	for _, ext := range []string{".pdf", ".png"} {
		path := filepath.Join(dir, base+ext)
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return nil, fmt.Errorf("saving %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
