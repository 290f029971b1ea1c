package sweep

import (
	"errors"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/rand"

	"splitscan/nn"
	"splitscan/nn/layers"
	"splitscan/tensor"
	"splitscan/utils"
)

// Config holds the sweep configuration: the ordered validation-split
// fractions to scan and the fixed training hyperparameters shared by every
// run.
type Config struct {
	Splits       []float64
	BatchSize    int
	Epochs       int
	Dropout      float64
	LearningRate float64
	LeakySlope   float64
	Hidden       []int
	Classes      int
	Seed         uint64
}

// DefaultConfig reproduces the original scan: ten split fractions over a
// 784:128:128:10 MLP.
func DefaultConfig() Config {
	return Config{
		Splits:       []float64{0.01, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
		BatchSize:    20,
		Epochs:       50,
		Dropout:      0.6,
		LearningRate: 0.001,
		LeakySlope:   0.1,
		Hidden:       []int{128, 128},
		Classes:      10,
		Seed:         42,
	}
}

// Validate verifies the configuration is runnable. Split fraction values
// themselves are used as-is.
func (c *Config) Validate() error {
	if len(c.Splits) == 0 {
		return errors.New("at least one split fraction must be given")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, got %d", c.Epochs)
	}
	if c.Dropout < 0 || c.Dropout >= 1 {
		return fmt.Errorf("dropout must be in [0,1), got %v", c.Dropout)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %v", c.LearningRate)
	}
	if len(c.Hidden) == 0 {
		return errors.New("at least one hidden layer must be given")
	}
	if c.Classes <= 1 {
		return fmt.Errorf("need at least two classes, got %d", c.Classes)
	}
	return nil
}

// Results are the four final-epoch metric sequences, index-aligned with the
// split fractions that produced them.
type Results struct {
	Splits  []float64 `json:"splits"`
	Loss    []float64 `json:"loss"`
	ValLoss []float64 `json:"val_loss"`
	Acc     []float64 `json:"accuracy"`
	ValAcc  []float64 `json:"val_accuracy"`
}

// Errors for degenerate split fractions.
var (
	ErrNoTrainingSamples   = errors.New("validation split leaves no training samples")
	ErrNoValidationSamples = errors.New("validation split leaves no validation samples")
)

type runMetrics struct {
	loss, valLoss, acc, valAcc float64
}

// Run scans the split fractions in list order. Every iteration trains a
// freshly initialized model; nothing carries over between runs. The first
// failed run aborts the sweep.
func Run(cfg Config, images *tensor.Tensor, labels []int) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(images.Shape) < 2 || images.Shape[0] != len(labels) {
		return nil, fmt.Errorf("got %d labels for image tensor of shape %v", len(labels), images.Shape)
	}

	res := &Results{Splits: append([]float64(nil), cfg.Splits...)}
	for i, vs := range cfg.Splits {
		if utils.Verbose {
			fmt.Fprintf(utils.Output, "\nTraining model using a validation split of %v\n", vs)
		}
		m, err := trainOne(cfg, images, labels, vs, cfg.Seed+uint64(i))
		if err != nil {
			return nil, fmt.Errorf("split %v: %w", vs, err)
		}
		res.Loss = append(res.Loss, m.loss)
		res.ValLoss = append(res.ValLoss, m.valLoss)
		res.Acc = append(res.Acc, m.acc)
		res.ValAcc = append(res.ValAcc, m.valAcc)
	}
	return res, nil
}

// buildModel constructs the fixed topology: flatten, then one dense +
// leaky-ReLU + dropout block per hidden size, then a linear logits layer.
func buildModel(cfg Config, inDim int, src rand.Source) *nn.Sequential {
	mods := []nn.Module{layers.NewFlatten()}
	prev := inDim
	for _, h := range cfg.Hidden {
		mods = append(mods,
			layers.NewDense(prev, h, src),
			layers.NewLeakyReLU(cfg.LeakySlope),
			layers.NewDropout(cfg.Dropout, src),
		)
		prev = h
	}
	mods = append(mods, layers.NewDense(prev, cfg.Classes, src))
	return &nn.Sequential{Layers: mods}
}

// trainOne trains a fresh model for one split fraction and returns its
// final-epoch metrics. The validation subset is the tail fraction of the
// training data; the test set is never consulted.
func trainOne(cfg Config, images *tensor.Tensor, labels []int, vs float64, seed uint64) (runMetrics, error) {
	n := images.Shape[0]
	splitAt := int(float64(n) * (1 - vs))
	if splitAt <= 0 {
		return runMetrics{}, ErrNoTrainingSamples
	}
	if splitAt >= n {
		return runMetrics{}, ErrNoValidationSamples
	}

	src := rand.NewSource(seed)
	rng := rand.New(src)
	model := buildModel(cfg, images.Len()/n, src)
	adam := nn.NewAdam(model.Params(), cfg.LearningRate)
	var ce nn.SparseCrossEntropy

	indices := make([]int, splitAt)
	for i := range indices {
		indices[i] = i
	}
	numBatches := (splitAt + cfg.BatchSize - 1) / cfg.BatchSize

	var m runMetrics
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		var bar *progressbar.ProgressBar
		if utils.Verbose {
			bar = progressbar.Default(int64(numBatches), fmt.Sprintf("epoch %d/%d", epoch, cfg.Epochs))
		}

		// running batch averages, matching what fit reports per epoch
		sumLoss, sumAcc := 0.0, 0.0
		for start := 0; start < splitAt; start += cfg.BatchSize {
			end := start + cfg.BatchSize
			if end > splitAt {
				end = splitAt
			}
			xb, yb := gatherBatch(images, labels, indices[start:end])

			adam.ZeroGrad()
			out, err := model.Forward(xb)
			if err != nil {
				return runMetrics{}, err
			}
			loss, grad, err := ce.LossAndGrad(out, yb)
			if err != nil {
				return runMetrics{}, err
			}
			acc, err := nn.Accuracy(out, yb)
			if err != nil {
				return runMetrics{}, err
			}
			if _, err := model.Backward(grad); err != nil {
				return runMetrics{}, err
			}
			adam.Step()

			bs := float64(end - start)
			sumLoss += loss * bs
			sumAcc += acc * bs
			if bar != nil {
				bar.Add(1)
			}
		}

		m.loss = sumLoss / float64(splitAt)
		m.acc = sumAcc / float64(splitAt)
		valLoss, valAcc, err := evaluate(model, images, labels, splitAt, n, cfg.BatchSize)
		if err != nil {
			return runMetrics{}, err
		}
		m.valLoss, m.valAcc = valLoss, valAcc

		if utils.Verbose {
			fmt.Fprintf(utils.Output, "Epoch %d/%d | loss: %.4f | accuracy: %.4f | val_loss: %.4f | val_accuracy: %.4f\n",
				epoch, cfg.Epochs, m.loss, m.acc, m.valLoss, m.valAcc)
		}
	}
	return m, nil
}

// evaluate computes loss and accuracy over samples [from, to) with dropout
// disabled.
func evaluate(model *nn.Sequential, images *tensor.Tensor, labels []int, from, to, batchSize int) (float64, float64, error) {
	model.SetTraining(false)
	defer model.SetTraining(true)

	var ce nn.SparseCrossEntropy
	idx := make([]int, 0, batchSize)
	sumLoss, sumAcc := 0.0, 0.0
	for start := from; start < to; start += batchSize {
		end := start + batchSize
		if end > to {
			end = to
		}
		idx = idx[:0]
		for i := start; i < end; i++ {
			idx = append(idx, i)
		}
		xb, yb := gatherBatch(images, labels, idx)
		out, err := model.Forward(xb)
		if err != nil {
			return 0, 0, err
		}
		loss, err := ce.Loss(out, yb)
		if err != nil {
			return 0, 0, err
		}
		acc, err := nn.Accuracy(out, yb)
		if err != nil {
			return 0, 0, err
		}
		bs := float64(end - start)
		sumLoss += loss * bs
		sumAcc += acc * bs
	}
	total := float64(to - from)
	return sumLoss / total, sumAcc / total, nil
}

// gatherBatch copies the selected samples into one batch tensor.
func gatherBatch(images *tensor.Tensor, labels []int, idx []int) (*tensor.Tensor, []int) {
	sampleSize := images.Len() / images.Shape[0]
	shape := append([]int{len(idx)}, images.Shape[1:]...)
	xb := tensor.New(shape...)
	yb := make([]int, len(idx))
	for b, i := range idx {
		copy(xb.Data[b*sampleSize:(b+1)*sampleSize], images.Data[i*sampleSize:(i+1)*sampleSize])
		yb[b] = labels[i]
	}
	return xb, yb
}
