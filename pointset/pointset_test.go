package pointset_test

import (
	"testing"

	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/stretchr/testify/require"
)

func TestNewLengthMismatch(t *testing.T) {
	_, err := pointset.New([]float64{0, 1}, []float64{0}, []float64{0, 1})
	require.ErrorIs(t, err, pointset.ErrLengthMismatch)
}

func TestBoundsAndSpacing(t *testing.T) {
	s, err := pointset.New([]float64{0, 10, 0}, []float64{0, 0, 10}, []float64{10, 20, 30})
	require.NoError(t, err)

	minX, minY, maxX, maxY := s.Bounds()
	require.Equal(t, 0.0, minX)
	require.Equal(t, 0.0, minY)
	require.Equal(t, 10.0, maxX)
	require.Equal(t, 10.0, maxY)

	spacing := s.TypicalSpacing()
	require.Greater(t, spacing, 0.0)
}

func TestCloneIsIndependent(t *testing.T) {
	s, err := pointset.New([]float64{1}, []float64{2}, []float64{3})
	require.NoError(t, err)
	c := s.Clone()
	c.X[0] = 99
	require.Equal(t, 1.0, s.X[0])
}

func TestEllipseWholePlane(t *testing.T) {
	e := pointset.Ellipse{}
	require.True(t, e.IsWholePlane())
	require.True(t, e.Contains(1000, 1000, 0, 0))
}

func TestEllipseCircle(t *testing.T) {
	e := pointset.Ellipse{Radius1: 1, Radius2: 1}
	require.True(t, e.IsCircle())
	require.True(t, e.Contains(0.5, 0, 0, 0))
	require.False(t, e.Contains(2, 0, 0, 0))
}

func TestEllipseRotated(t *testing.T) {
	// A thin ellipse along X, rotated 90 degrees so it now runs along Y.
	e := pointset.Ellipse{Radius1: 5, Radius2: 1, AngleDeg: 90}
	require.True(t, e.Contains(0, 4, 0, 0))
	require.False(t, e.Contains(4, 0, 0, 0))
}
