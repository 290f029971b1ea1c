package nn

import (
	"fmt"
	"math"

	"splitscan/tensor"
)

// Softmax applies a numerically stable softmax to each row of a
// (batch, classes) tensor.
func Softmax(logits *tensor.Tensor) (*tensor.Tensor, error) {
	if len(logits.Shape) != 2 {
		return nil, fmt.Errorf("Softmax requires a 2-D tensor, got %v", logits.Shape)
	}
	batch, classes := logits.Shape[0], logits.Shape[1]
	out := tensor.New(batch, classes)
	for b := 0; b < batch; b++ {
		row := logits.Data[b*classes : (b+1)*classes]
		maxLogit := row[0]
		for _, v := range row {
			if v > maxLogit {
				maxLogit = v
			}
		}
		expSum := 0.0
		outRow := out.Data[b*classes : (b+1)*classes]
		for i, v := range row {
			e := math.Exp(v - maxLogit)
			outRow[i] = e
			expSum += e
		}
		for i := range outRow {
			outRow[i] /= expSum
		}
	}
	return out, nil
}

// SparseCrossEntropy is a categorical cross-entropy loss computed from raw
// logits against integer class labels. The softmax is applied internally.
type SparseCrossEntropy struct{}

// Loss returns the mean cross-entropy over the batch.
func (SparseCrossEntropy) Loss(logits *tensor.Tensor, labels []int) (float64, error) {
	probs, err := Softmax(logits)
	if err != nil {
		return 0, err
	}
	return meanNLL(probs, labels)
}

// LossAndGrad returns the mean cross-entropy over the batch together with
// the gradient of the loss with respect to the logits,
// (softmax - one_hot) / batch.
func (SparseCrossEntropy) LossAndGrad(logits *tensor.Tensor, labels []int) (float64, *tensor.Tensor, error) {
	probs, err := Softmax(logits)
	if err != nil {
		return 0, nil, err
	}
	loss, err := meanNLL(probs, labels)
	if err != nil {
		return 0, nil, err
	}
	batch, classes := probs.Shape[0], probs.Shape[1]
	grad := tensor.New(batch, classes)
	inv := 1.0 / float64(batch)
	for b := 0; b < batch; b++ {
		for i := 0; i < classes; i++ {
			g := probs.Data[b*classes+i]
			if i == labels[b] {
				g -= 1
			}
			grad.Data[b*classes+i] = g * inv
		}
	}
	return loss, grad, nil
}

func meanNLL(probs *tensor.Tensor, labels []int) (float64, error) {
	batch, classes := probs.Shape[0], probs.Shape[1]
	if len(labels) != batch {
		return 0, fmt.Errorf("batch size %d does not match %d labels", batch, len(labels))
	}
	loss := 0.0
	for b, label := range labels {
		if label < 0 || label >= classes {
			return 0, fmt.Errorf("label %d out of range for %d classes", label, classes)
		}
		p := probs.Data[b*classes+label]
		if p < 1e-10 {
			p = 1e-10
		}
		loss -= math.Log(p)
	}
	return loss / float64(batch), nil
}

// Accuracy returns the fraction of rows whose argmax matches the label.
func Accuracy(logits *tensor.Tensor, labels []int) (float64, error) {
	if len(logits.Shape) != 2 {
		return 0, fmt.Errorf("Accuracy requires a 2-D tensor, got %v", logits.Shape)
	}
	batch, classes := logits.Shape[0], logits.Shape[1]
	if len(labels) != batch {
		return 0, fmt.Errorf("batch size %d does not match %d labels", batch, len(labels))
	}
	correct := 0
	for b, label := range labels {
		best := 0
		row := logits.Data[b*classes : (b+1)*classes]
		for i, v := range row {
			if v > row[best] {
				best = i
			}
		}
		if best == label {
			correct++
		}
	}
	return float64(correct) / float64(batch), nil
}
