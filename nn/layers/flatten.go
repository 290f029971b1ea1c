package layers

import (
	"fmt"

	"splitscan/tensor"
)

// Flatten reshapes a batch (B, d1, d2, …) to (B, d1·d2·…). The first
// dimension is always treated as the batch dimension.
type Flatten struct {
	inShape []int
}

func NewFlatten() *Flatten { return &Flatten{} }

func (f *Flatten) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	if len(x.Shape) < 2 {
		return nil, fmt.Errorf("Flatten: input must have a batch dimension, got shape %v", x.Shape)
	}
	f.inShape = append([]int(nil), x.Shape...)
	batch := x.Shape[0]
	return x.Reshape(batch, x.Len()/batch)
}

func (f *Flatten) Backward(gradOut *tensor.Tensor) (*tensor.Tensor, error) {
	if f.inShape == nil {
		return nil, fmt.Errorf("Flatten: Backward before Forward")
	}
	return gradOut.Reshape(f.inShape...)
}
