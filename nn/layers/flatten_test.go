package layers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"splitscan/tensor"
)

func TestFlattenRoundTrip(t *testing.T) {
	f := NewFlatten()
	x := tensor.New(4, 28, 28)
	y, err := f.Forward(x)
	require.NoError(t, err)
	require.Equal(t, []int{4, 784}, y.Shape)

	g, err := f.Backward(tensor.New(4, 784))
	require.NoError(t, err)
	require.Equal(t, []int{4, 28, 28}, g.Shape)
}

func TestFlattenNeedsBatchDim(t *testing.T) {
	f := NewFlatten()
	_, err := f.Forward(tensor.New(784))
	require.Error(t, err)
	_, err = f.Backward(tensor.New(1, 784))
	require.Error(t, err)
}
