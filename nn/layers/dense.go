package layers

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"splitscan/nn"
	"splitscan/tensor"
)

// Dense is a fully-connected layer computing y = x·Wᵀ + b over a
// (batch, in) input. W has shape (out, in), b has shape (out).
type Dense struct {
	W, B *nn.Param

	inDim, outDim int
	lastInput     *tensor.Tensor
}

// NewDense creates a Dense layer with glorot-uniform initialized weights and
// zero biases, drawing from src.
func NewDense(inDim, outDim int, src rand.Source) *Dense {
	w := tensor.New(outDim, inDim)
	limit := math.Sqrt(6.0 / float64(inDim+outDim))
	dist := distuv.Uniform{
		Min: -limit,
		Max: limit,
		Src: src,
	}
	for i := range w.Data {
		w.Data[i] = dist.Rand()
	}
	return &Dense{
		W:      &nn.Param{Value: w, Grad: tensor.New(outDim, inDim)},
		B:      &nn.Param{Value: tensor.New(outDim), Grad: tensor.New(outDim)},
		inDim:  inDim,
		outDim: outDim,
	}
}

func (d *Dense) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	if len(x.Shape) != 2 || x.Shape[1] != d.inDim {
		return nil, fmt.Errorf("Dense(%d→%d): bad input shape %v", d.inDim, d.outDim, x.Shape)
	}
	batch := x.Shape[0]
	d.lastInput = x

	xm := mat.NewDense(batch, d.inDim, x.Data)
	wm := mat.NewDense(d.outDim, d.inDim, d.W.Value.Data)
	y := tensor.New(batch, d.outDim)
	ym := mat.NewDense(batch, d.outDim, y.Data)
	ym.Mul(xm, wm.T())

	for b := 0; b < batch; b++ {
		row := y.Data[b*d.outDim : (b+1)*d.outDim]
		for i := range row {
			row[i] += d.B.Value.Data[i]
		}
	}
	return y, nil
}

func (d *Dense) Backward(gradOut *tensor.Tensor) (*tensor.Tensor, error) {
	if d.lastInput == nil {
		return nil, fmt.Errorf("Dense(%d→%d): Backward before Forward", d.inDim, d.outDim)
	}
	if len(gradOut.Shape) != 2 || gradOut.Shape[1] != d.outDim {
		return nil, fmt.Errorf("Dense(%d→%d): bad gradient shape %v", d.inDim, d.outDim, gradOut.Shape)
	}
	batch := gradOut.Shape[0]

	gm := mat.NewDense(batch, d.outDim, gradOut.Data)
	xm := mat.NewDense(batch, d.inDim, d.lastInput.Data)
	wm := mat.NewDense(d.outDim, d.inDim, d.W.Value.Data)

	// dL/dW = gᵀ·x, accumulated
	wGrad := mat.NewDense(d.outDim, d.inDim, nil)
	wGrad.Mul(gm.T(), xm)
	for i, v := range wGrad.RawMatrix().Data {
		d.W.Grad.Data[i] += v
	}

	// dL/db = column sums of g
	for b := 0; b < batch; b++ {
		row := gradOut.Data[b*d.outDim : (b+1)*d.outDim]
		for i, v := range row {
			d.B.Grad.Data[i] += v
		}
	}

	// dL/dx = g·W
	gradIn := tensor.New(batch, d.inDim)
	gim := mat.NewDense(batch, d.inDim, gradIn.Data)
	gim.Mul(gm, wm)
	return gradIn, nil
}

// Params returns the weight and bias parameters.
func (d *Dense) Params() []*nn.Param {
	return []*nn.Param{d.W, d.B}
}
