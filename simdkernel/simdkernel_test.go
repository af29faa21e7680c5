package simdkernel_test

import (
	"testing"

	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/simdkernel"
	"github.com/stretchr/testify/require"
)

func samplePoints(t *testing.T) *pointset.Set {
	t.Helper()
	n := 37 // deliberately not a multiple of 4 or 8, to exercise tails
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 0
		z[i] = float64(i * i)
	}
	pts, err := pointset.New(x, y, z)
	require.NoError(t, err)
	return pts
}

func TestSelectScalarWhenDisabled(t *testing.T) {
	w := simdkernel.Select(simdkernel.Config{UseSSE: false, UseAVX: false})
	require.Equal(t, simdkernel.Scalar, w)
}

func TestScalarExactHit(t *testing.T) {
	pts := samplePoints(t)
	buf := simdkernel.Build(pts, simdkernel.Scalar)
	v, ok := simdkernel.InvDistNN(buf, 5, 0, -9999)
	require.True(t, ok)
	require.Equal(t, float32(25), v)
}

func TestScalarNoData(t *testing.T) {
	pts, _ := pointset.New([]float64{}, []float64{}, []float64{})
	buf := simdkernel.Build(pts, simdkernel.Scalar)
	v, ok := simdkernel.InvDistNN(buf, 0, 0, -42)
	require.False(t, ok)
	require.Equal(t, float32(-42), v)
}

func TestLanes4MatchesScalarAwayFromSamples(t *testing.T) {
	pts := samplePoints(t)
	scalar := simdkernel.Build(pts, simdkernel.Scalar)
	lanes4 := simdkernel.Build(pts, simdkernel.Lanes4)

	vScalar, okScalar := simdkernel.InvDistNN(scalar, 18.5, 3, -1)
	vLanes, okLanes := simdkernel.InvDistNN(lanes4, 18.5, 3, -1)

	require.Equal(t, okScalar, okLanes)
	require.InDelta(t, float64(vScalar), float64(vLanes), 1e-3)
}

func TestLanes8ExactHitAmongManyPoints(t *testing.T) {
	pts := samplePoints(t)
	buf := simdkernel.Build(pts, simdkernel.Lanes8)
	v, ok := simdkernel.InvDistNN(buf, 30, 0, -1)
	require.True(t, ok)
	require.Equal(t, float32(900), v)
}

func TestBuildPadsTailWithLastPoint(t *testing.T) {
	pts := samplePoints(t) // N=37, not a multiple of 8
	buf := simdkernel.Build(pts, simdkernel.Lanes8)
	padded := len(buf.X.Floats())
	require.Equal(t, 0, padded%8)
	last := pts.X[pts.Len()-1]
	require.Equal(t, float32(last), buf.X.Floats()[padded-1])
}
