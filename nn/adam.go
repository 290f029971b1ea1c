package nn

import (
	"math"

	"splitscan/tensor"
)

// Adam implements the Adam update rule with bias-corrected first and second
// moment estimates.
type Adam struct {
	LearningRate float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64

	params []*Param
	m, v   []*tensor.Tensor
	step   int
}

// NewAdam creates an Adam optimizer over params. Beta and epsilon use the
// keras defaults.
func NewAdam(params []*Param, learningRate float64) *Adam {
	a := &Adam{
		LearningRate: learningRate,
		Beta1:        0.9,
		Beta2:        0.999,
		Epsilon:      1e-7,
		params:       params,
		m:            make([]*tensor.Tensor, len(params)),
		v:            make([]*tensor.Tensor, len(params)),
	}
	for i, p := range params {
		a.m[i] = tensor.New(p.Value.Shape...)
		a.v[i] = tensor.New(p.Value.Shape...)
	}
	return a
}

// ZeroGrad resets the gradient of every parameter.
func (a *Adam) ZeroGrad() {
	for _, p := range a.params {
		for i := range p.Grad.Data {
			p.Grad.Data[i] = 0
		}
	}
}

// Step applies one Adam update using the currently accumulated gradients.
func (a *Adam) Step() {
	a.step++
	c1 := 1 - math.Pow(a.Beta1, float64(a.step))
	c2 := 1 - math.Pow(a.Beta2, float64(a.step))
	for i, p := range a.params {
		m, v := a.m[i], a.v[i]
		for j, g := range p.Grad.Data {
			m.Data[j] = a.Beta1*m.Data[j] + (1-a.Beta1)*g
			v.Data[j] = a.Beta2*v.Data[j] + (1-a.Beta2)*g*g
			mHat := m.Data[j] / c1
			vHat := v.Data[j] / c2
			p.Value.Data[j] -= a.LearningRate * mHat / (math.Sqrt(vHat) + a.Epsilon)
		}
	}
}
