package nn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"splitscan/tensor"
)

func TestAdamFirstStep(t *testing.T) {
	p := &Param{Value: tensor.NewWithData([]float64{1, -1}), Grad: tensor.NewWithData([]float64{2, -4})}
	a := NewAdam([]*Param{p}, 0.01)
	a.Step()

	// after bias correction the first update is lr·g/(|g|+ε)
	require.InDelta(t, 1-0.01, p.Value.Data[0], 1e-6)
	require.InDelta(t, -1+0.01, p.Value.Data[1], 1e-6)
}

func TestAdamConvergesOnQuadratic(t *testing.T) {
	// minimize f(x) = x² by feeding grad = 2x
	p := &Param{Value: tensor.NewWithData([]float64{3}), Grad: tensor.New(1)}
	a := NewAdam([]*Param{p}, 0.05)
	for i := 0; i < 500; i++ {
		a.ZeroGrad()
		p.Grad.Data[0] = 2 * p.Value.Data[0]
		a.Step()
	}
	require.InDelta(t, 0.0, p.Value.Data[0], 0.2)
}

func TestAdamZeroGrad(t *testing.T) {
	p := &Param{Value: tensor.New(2), Grad: tensor.NewWithData([]float64{1, 2})}
	a := NewAdam([]*Param{p}, 0.01)
	a.ZeroGrad()
	require.Equal(t, []float64{0, 0}, p.Grad.Data)
}
