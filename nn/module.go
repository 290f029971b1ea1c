package nn

import (
	"splitscan/tensor"
)

// Module defines a single layer/unit in the network.
type Module interface {
	Forward(x *tensor.Tensor) (*tensor.Tensor, error)
	// Backward computes gradients and propagates them.
	// It takes the gradient of the loss with respect to the module's output,
	// and returns the gradient of the loss with respect to the module's input.
	Backward(gradOut *tensor.Tensor) (*tensor.Tensor, error)
}

// Param is one trainable array together with its accumulated gradient.
type Param struct {
	Value *tensor.Tensor
	Grad  *tensor.Tensor
}

// Trainable is implemented by modules that own parameters.
type Trainable interface {
	Params() []*Param
}

// TrainToggler is implemented by modules that behave differently during
// training and inference (dropout).
type TrainToggler interface {
	SetTraining(training bool)
}

// Sequential chains multiple Modules in order.
type Sequential struct {
	Layers []Module
}

// Forward applies each layer in sequence.
func (s *Sequential) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	var err error
	out := x
	for _, layer := range s.Layers {
		out, err = layer.Forward(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Backward applies Backward in reverse order.
func (s *Sequential) Backward(grad *tensor.Tensor) (*tensor.Tensor, error) {
	var err error
	out := grad
	for i := len(s.Layers) - 1; i >= 0; i-- {
		out, err = s.Layers[i].Backward(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Params collects the parameters of every trainable layer, in layer order.
func (s *Sequential) Params() []*Param {
	var params []*Param
	for _, layer := range s.Layers {
		if tr, ok := layer.(Trainable); ok {
			params = append(params, tr.Params()...)
		}
	}
	return params
}

// SetTraining switches every mode-aware layer between training and inference.
func (s *Sequential) SetTraining(training bool) {
	for _, layer := range s.Layers {
		if tt, ok := layer.(TrainToggler); ok {
			tt.SetTraining(training)
		}
	}
}
