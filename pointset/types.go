// Package pointset defines the scattered-data point set shared by every
// evaluator, index, and the gridding context: three parallel float64
// sequences (X, Y, Z) plus the search ellipse predicate used to decide
// which samples participate in a given cell's evaluation.
//
// A Set is immutable for the lifetime of any acceleration structure built
// over it (quadtree.Tree, delaunay.Index). Callers may either hand a Set
// to gridctx.New and let it borrow the backing arrays, or ask it to deep
// copy them; pointset itself never mutates X, Y, or Z.
package pointset

import (
	"errors"
	"math"
)

// ErrLengthMismatch indicates X, Y and Z are not the same length.
var ErrLengthMismatch = errors.New("pointset: X, Y and Z must have equal length")

// Set holds N scattered samples (X[i], Y[i], Z[i]).
type Set struct {
	X, Y, Z []float64
}

// New validates that x, y and z have equal length and returns a Set
// borrowing the given slices directly (no copy).
// Complexity: O(1).
func New(x, y, z []float64) (*Set, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, ErrLengthMismatch
	}
	return &Set{X: x, Y: y, Z: z}, nil
}

// Clone returns a Set holding deep copies of x, y and z.
// Complexity: O(N).
func (s *Set) Clone() *Set {
	x := make([]float64, len(s.X))
	y := make([]float64, len(s.Y))
	z := make([]float64, len(s.Z))
	copy(x, s.X)
	copy(y, s.Y)
	copy(z, s.Z)
	return &Set{X: x, Y: y, Z: z}
}

// Len returns the number of points in the set.
func (s *Set) Len() int { return len(s.X) }

// Bounds returns the axis-aligned bounding box of the point set.
// For an empty set it returns all zeros.
// Complexity: O(N).
func (s *Set) Bounds() (minX, minY, maxX, maxY float64) {
	if len(s.X) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = s.X[0], s.X[0]
	minY, maxY = s.Y[0], s.Y[0]
	for i := 1; i < len(s.X); i++ {
		if s.X[i] < minX {
			minX = s.X[i]
		}
		if s.X[i] > maxX {
			maxX = s.X[i]
		}
		if s.Y[i] < minY {
			minY = s.Y[i]
		}
		if s.Y[i] > maxY {
			maxY = s.Y[i]
		}
	}
	return minX, minY, maxX, maxY
}

// TypicalSpacing returns sqrt(bbox_area / N), the initial search-radius
// estimate used by the quadtree-backed nearest-neighbor search when no
// explicit radius was configured. Returns 0 for N <= 1 or a degenerate
// (zero-area) bounding box.
// Complexity: O(N) (via Bounds).
func (s *Set) TypicalSpacing() float64 {
	n := s.Len()
	if n == 0 {
		return 0
	}
	minX, minY, maxX, maxY := s.Bounds()
	area := (maxX - minX) * (maxY - minY)
	if area <= 0 {
		return 0
	}
	return math.Sqrt(area / float64(n))
}
