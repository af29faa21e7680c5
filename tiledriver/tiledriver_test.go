package tiledriver_test

import (
	"sync/atomic"
	"testing"

	"github.com/fieldgrid/scattergrid/gridctx"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/rasterblit"
	"github.com/fieldgrid/scattergrid/tiledriver"
	"github.com/stretchr/testify/require"
)

func TestResolveThreadsAllCPUsCapsAtNYOverTwo(t *testing.T) {
	n := tiledriver.ResolveThreads(tiledriver.Config{AllCPUs: true}, 6)
	require.LessOrEqual(t, n, 3)
	require.GreaterOrEqual(t, n, 1)
}

func TestResolveThreadsSingleThreadedBelowTwo(t *testing.T) {
	require.Equal(t, 1, tiledriver.ResolveThreads(tiledriver.Config{NumThreads: 0}, 100))
	require.Equal(t, 1, tiledriver.ResolveThreads(tiledriver.Config{NumThreads: -5}, 100))
}

func TestResolveThreadsCapsAt128(t *testing.T) {
	n := tiledriver.ResolveThreads(tiledriver.Config{NumThreads: 10000}, 1000)
	require.Equal(t, 128, n)
}

func TestWindowCellCenter(t *testing.T) {
	w := tiledriver.Window{XMin: -1, XMax: 1, YMin: -1, YMax: 1, NX: 2, NY: 2}
	cx, cy := w.CellCenter(0, 0)
	require.InDelta(t, -0.5, cx, 1e-12)
	require.InDelta(t, -0.5, cy, 1e-12)
}

func newSinglePointContext(t *testing.T) *gridctx.Context {
	t.Helper()
	pts, err := pointset.New([]float64{0}, []float64{0}, []float64{7})
	require.NoError(t, err)
	gc, err := gridctx.New(option.InvDist, option.Default(option.InvDist), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)
	return gc
}

func TestRunSingleThreadedFillsEveryCell(t *testing.T) {
	gc := newSinglePointContext(t)
	window := tiledriver.Window{XMin: -1, XMax: 1, YMin: -1, YMax: 1, NX: 2, NY: 2, Elem: rasterblit.Float64}
	buf, err := rasterblit.NewBuffer(2, 2, rasterblit.Float64)
	require.NoError(t, err)

	err = tiledriver.Run(gc, window, buf, tiledriver.Config{NumThreads: 1}, func(float64, string) bool { return true })
	require.NoError(t, err)
	for j := 0; j < window.NY; j++ {
		for i := 0; i < window.NX; i++ {
			require.InDelta(t, 7.0, rasterblit.ReadFloat64(buf, i, j), 1e-9)
		}
	}
}

func TestRunMultiThreadedMatchesSingleThreaded(t *testing.T) {
	n := 25
	x := make([]float64, n*n)
	y := make([]float64, n*n)
	z := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x[i*n+j] = float64(i)
			y[i*n+j] = float64(j)
			z[i*n+j] = float64(i + j)
		}
	}
	pts, err := pointset.New(x, y, z)
	require.NoError(t, err)
	gc, err := gridctx.New(option.InvDist, option.Default(option.InvDist), pts, gridctx.Config{Borrow: true})
	require.NoError(t, err)

	window := tiledriver.Window{XMin: 0, XMax: 24, YMin: 0, YMax: 24, NX: 12, NY: 12, Elem: rasterblit.Float64}

	single, err := rasterblit.NewBuffer(window.NX, window.NY, rasterblit.Float64)
	require.NoError(t, err)
	require.NoError(t, tiledriver.Run(gc, window, single, tiledriver.Config{NumThreads: 1}, func(float64, string) bool { return true }))

	multi, err := rasterblit.NewBuffer(window.NX, window.NY, rasterblit.Float64)
	require.NoError(t, err)
	require.NoError(t, tiledriver.Run(gc, window, multi, tiledriver.Config{NumThreads: 4}, func(float64, string) bool { return true }))

	require.Equal(t, single.Bytes, multi.Bytes)
}

func TestRunCancellationAfterTenPercent(t *testing.T) {
	gc := newSinglePointContext(t)
	window := tiledriver.Window{XMin: -1, XMax: 1, YMin: -1, YMax: 1, NX: 5, NY: 20, Elem: rasterblit.Float64}
	buf, err := rasterblit.NewBuffer(window.NX, window.NY, rasterblit.Float64)
	require.NoError(t, err)

	var calls int32
	err = tiledriver.Run(gc, window, buf, tiledriver.Config{NumThreads: 1}, func(fraction float64, _ string) bool {
		atomic.AddInt32(&calls, 1)
		return fraction < 0.1
	})
	require.ErrorIs(t, err, tiledriver.ErrCancelled)
	require.Greater(t, atomic.LoadInt32(&calls), int32(0))

	// Single-threaded, cancellation fires as soon as fraction reaches
	// 2/20 = 0.1, after row index 1 is blitted: rows 0 and 1 carry the
	// single sample's value (7), and every row from 2 on was never
	// reached, so it is still the buffer's zero-initialized bytes.
	require.InDelta(t, 7.0, rasterblit.ReadFloat64(buf, 0, 0), 1e-9)
	require.InDelta(t, 7.0, rasterblit.ReadFloat64(buf, 0, 1), 1e-9)
	for j := 2; j < window.NY; j++ {
		for i := 0; i < window.NX; i++ {
			require.Equal(t, 0.0, rasterblit.ReadFloat64(buf, i, j), "row %d should be unwritten after cancellation", j)
		}
	}
}
