package gridctx_test

import (
	"testing"

	"github.com/fieldgrid/scattergrid/gridctx"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/simdkernel"
	"github.com/stretchr/testify/require"
)

func gridPoints(t *testing.T, n int) *pointset.Set {
	t.Helper()
	x := make([]float64, n*n)
	y := make([]float64, n*n)
	z := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x[i*n+j] = float64(i)
			y[i*n+j] = float64(j)
			z[i*n+j] = float64(i*n + j)
		}
	}
	pts, err := pointset.New(x, y, z)
	require.NoError(t, err)
	return pts
}

func TestNewRejectsNilPoints(t *testing.T) {
	_, err := gridctx.New(option.InvDist, option.Default(option.InvDist), nil, gridctx.Config{})
	require.Error(t, err)
}

func TestBorrowVsCloneIndependence(t *testing.T) {
	pts := gridPoints(t, 3)
	cloned, err := gridctx.New(option.InvDist, option.Default(option.InvDist), pts, gridctx.Config{Borrow: false})
	require.NoError(t, err)
	require.NotSame(t, pts, cloned.Points)

	borrowed, err := gridctx.New(option.InvDist, option.Default(option.InvDist), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.Same(t, pts, borrowed.Points)
}

func TestQuadtreeBuiltOnlyForLargeNearestWithUsableEllipse(t *testing.T) {
	small := gridPoints(t, 5) // 25 points, below the threshold
	c, err := gridctx.New(option.Nearest, option.Default(option.Nearest), small, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.Nil(t, c.Shared().Quadtree)

	large := gridPoints(t, 20) // 400 points
	c, err = gridctx.New(option.Nearest, option.Default(option.Nearest), large, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.NotNil(t, c.Shared().Quadtree)

	rotated := option.Default(option.Nearest)
	rotated.Radius1, rotated.Radius2, rotated.Angle = 5, 2, 30 // non-circular ellipse
	c, err = gridctx.New(option.Nearest, rotated, large, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.Nil(t, c.Shared().Quadtree)
}

func TestDelaunayBuiltOnlyForLinear(t *testing.T) {
	pts := gridPoints(t, 5)
	c, err := gridctx.New(option.InvDist, option.Default(option.InvDist), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.Nil(t, c.Shared().Delaunay)

	c, err = gridctx.New(option.Linear, option.Default(option.Linear), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.NotNil(t, c.Shared().Delaunay)
}

func TestEnsureQuadtreeForLinearFallbackOnlyBuildsWhenPerimeterMissesHull(t *testing.T) {
	pts, err := pointset.New([]float64{0, 4, 0}, []float64{0, 0, 4}, []float64{0, 4, 8})
	require.NoError(t, err)

	c, err := gridctx.New(option.Linear, option.Default(option.Linear), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.Nil(t, c.Shared().Quadtree)

	// Window sits entirely inside the triangle's hull: every perimeter cell
	// locates successfully, so no quadtree should be built.
	c.EnsureQuadtreeForLinearFallback(0.5, 1.5, 0.5, 1.5, 2, 2)
	require.Nil(t, c.Shared().Quadtree)

	// Window extends well past the hull: the perimeter probe should find a
	// miss and retroactively build the quadtree for the hull-miss fallback.
	c.EnsureQuadtreeForLinearFallback(-10, 10, -10, 10, 4, 4)
	require.NotNil(t, c.Shared().Quadtree)
}

func TestDelaunayDegenerateReturnsError(t *testing.T) {
	pts, err := pointset.New([]float64{0, 1}, []float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	_, err = gridctx.New(option.Linear, option.Default(option.Linear), pts, gridctx.Config{Borrow: true})
	require.ErrorIs(t, err, gridctx.ErrDegenerateTriangulation)
}

func TestSIMDBuiltOnlyForInvDistNNPowerTwoNoSmoothing(t *testing.T) {
	pts := gridPoints(t, 5)
	cfg := gridctx.Config{Borrow: true, SIMD: simdkernel.Config{UseSSE: true, UseAVX: true}}

	c, err := gridctx.New(option.InvDistNearestNeighbor, option.Default(option.InvDistNearestNeighbor), pts, cfg)
	require.NoError(t, err)
	// Whether SIMD is actually built depends on the test machine's CPU
	// features (simdkernel.Select), but requesting it must never error and
	// must never attach SIMD buffers when the caller disabled both widths.
	_ = c.Shared().SIMD

	opts := option.Default(option.InvDistNearestNeighbor)
	opts.Smoothing = 1
	c, err = gridctx.New(option.InvDistNearestNeighbor, opts, pts, cfg)
	require.NoError(t, err)
	require.Nil(t, c.Shared().SIMD)

	noSIMD := gridctx.Config{Borrow: true}
	c, err = gridctx.New(option.InvDistNearestNeighbor, option.Default(option.InvDistNearestNeighbor), pts, noSIMD)
	require.NoError(t, err)
	require.Nil(t, c.Shared().SIMD)
}

func TestInitialRadiusEstimateIsTypicalSpacing(t *testing.T) {
	pts := gridPoints(t, 10)
	c, err := gridctx.New(option.Nearest, option.Default(option.Nearest), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.Equal(t, pts.TypicalSpacing(), c.Shared().InitialRadius)
}

func TestCloseIsSafeForBorrowedContext(t *testing.T) {
	pts := gridPoints(t, 3)
	c, err := gridctx.New(option.InvDist, option.Default(option.InvDist), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.Same(t, pts, c.Points)
}
