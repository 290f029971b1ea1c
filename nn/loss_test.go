package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"splitscan/tensor"
)

func TestSoftmaxRowsSumToOne(t *testing.T) {
	logits := &tensor.Tensor{
		Data:  []float64{1, 2, 3, -5, 0, 5},
		Shape: []int{2, 3},
	}
	probs, err := Softmax(logits)
	require.NoError(t, err)
	for b := 0; b < 2; b++ {
		sum := 0.0
		for i := 0; i < 3; i++ {
			p := probs.At(b, i)
			require.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestSoftmaxStableForLargeLogits(t *testing.T) {
	logits := &tensor.Tensor{Data: []float64{1000, 1001}, Shape: []int{1, 2}}
	probs, err := Softmax(logits)
	require.NoError(t, err)
	for _, p := range probs.Data {
		require.False(t, math.IsNaN(p))
	}
	require.InDelta(t, 1.0, probs.Data[0]+probs.Data[1], 1e-12)
}

func TestSparseCrossEntropyUniformLogits(t *testing.T) {
	// all-equal logits over 10 classes: loss is ln(10) regardless of label
	logits := tensor.New(2, 10)
	var ce SparseCrossEntropy
	loss, err := ce.Loss(logits, []int{3, 7})
	require.NoError(t, err)
	require.InDelta(t, math.Log(10), loss, 1e-12)
}

func TestSparseCrossEntropyGrad(t *testing.T) {
	logits := &tensor.Tensor{Data: []float64{2, 0, -1, 1, 1, 1}, Shape: []int{2, 3}}
	var ce SparseCrossEntropy
	loss, grad, err := ce.LossAndGrad(logits, []int{0, 2})
	require.NoError(t, err)
	require.Greater(t, loss, 0.0)
	require.Equal(t, []int{2, 3}, grad.Shape)

	// each row of (softmax - one_hot)/batch sums to zero
	for b := 0; b < 2; b++ {
		sum := 0.0
		for i := 0; i < 3; i++ {
			sum += grad.At(b, i)
		}
		require.InDelta(t, 0.0, sum, 1e-12)
	}
	// gradient at the true class is negative, pushing its logit up
	require.Less(t, grad.At(0, 0), 0.0)
	require.Less(t, grad.At(1, 2), 0.0)
}

func TestSparseCrossEntropyBadLabels(t *testing.T) {
	logits := tensor.New(2, 3)
	var ce SparseCrossEntropy
	_, err := ce.Loss(logits, []int{0})
	require.Error(t, err)
	_, err = ce.Loss(logits, []int{0, 3})
	require.Error(t, err)
}

func TestAccuracy(t *testing.T) {
	logits := &tensor.Tensor{
		Data: []float64{
			5, 1, 0,
			0, 2, 1,
			1, 0, 9,
			3, 2, 1,
		},
		Shape: []int{4, 3},
	}
	acc, err := Accuracy(logits, []int{0, 1, 2, 2})
	require.NoError(t, err)
	require.InDelta(t, 0.75, acc, 1e-12)
}
