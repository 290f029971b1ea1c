package layers

import (
	"fmt"

	"golang.org/x/exp/rand"

	"splitscan/tensor"
)

// Dropout zeroes each activation with probability P during training and
// scales the survivors by 1/(1-P), so inference needs no rescaling.
// Outside training it is a no-op.
type Dropout struct {
	P float64

	rng      *rand.Rand
	training bool
	mask     []float64
}

func NewDropout(p float64, src rand.Source) *Dropout {
	return &Dropout{P: p, rng: rand.New(src), training: true}
}

// SetTraining toggles the dropout mask on or off.
func (d *Dropout) SetTraining(training bool) { d.training = training }

func (d *Dropout) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	if !d.training || d.P == 0 {
		d.mask = nil
		return x, nil
	}
	if d.P < 0 || d.P >= 1 {
		return nil, fmt.Errorf("Dropout: rate %v outside [0,1)", d.P)
	}
	keep := 1 / (1 - d.P)
	d.mask = make([]float64, x.Len())
	out := tensor.New(x.Shape...)
	for i, v := range x.Data {
		if d.rng.Float64() >= d.P {
			d.mask[i] = keep
			out.Data[i] = v * keep
		}
	}
	return out, nil
}

func (d *Dropout) Backward(gradOut *tensor.Tensor) (*tensor.Tensor, error) {
	if d.mask == nil {
		return gradOut, nil
	}
	if len(d.mask) != gradOut.Len() {
		return nil, fmt.Errorf("Dropout: gradient shape %v does not match forward pass", gradOut.Shape)
	}
	gradIn := tensor.New(gradOut.Shape...)
	for i, g := range gradOut.Data {
		gradIn.Data[i] = g * d.mask[i]
	}
	return gradIn, nil
}
