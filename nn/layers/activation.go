package layers

import (
	"fmt"

	"splitscan/tensor"
)

// LeakyReLU applies max(x, alpha·x) elementwise, allowing a small non-zero
// gradient for negative inputs.
type LeakyReLU struct {
	Alpha float64

	lastInput *tensor.Tensor
}

func NewLeakyReLU(alpha float64) *LeakyReLU { return &LeakyReLU{Alpha: alpha} }

func (l *LeakyReLU) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	l.lastInput = x
	out := tensor.New(x.Shape...)
	for i, v := range x.Data {
		if v < 0 {
			out.Data[i] = l.Alpha * v
		} else {
			out.Data[i] = v
		}
	}
	return out, nil
}

func (l *LeakyReLU) Backward(gradOut *tensor.Tensor) (*tensor.Tensor, error) {
	if l.lastInput == nil {
		return nil, fmt.Errorf("LeakyReLU: Backward before Forward")
	}
	gradIn := tensor.New(gradOut.Shape...)
	for i, g := range gradOut.Data {
		if l.lastInput.Data[i] < 0 {
			gradIn.Data[i] = l.Alpha * g
		} else {
			gradIn.Data[i] = g
		}
	}
	return gradIn, nil
}
