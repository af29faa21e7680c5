// Package gridctx assembles the acceleration structures spec §4.6 ("the
// construction-time decision logic") derives from an Algorithm, Options and
// point set: a quadtree for accelerated nearest-neighbor search, a Delaunay
// triangulation for the linear evaluator, and aligned SIMD buffers for the
// invdistnn power=2/smoothing=0 fast path. A Context is the single object a
// tiledriver.Run call needs to drive evaluate.Eval across every worker.
package gridctx

import (
	"errors"

	"github.com/fieldgrid/scattergrid/delaunay"
	"github.com/fieldgrid/scattergrid/evaluate"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/quadtree"
	"github.com/fieldgrid/scattergrid/simdkernel"
)

// ErrDegenerateTriangulation surfaces delaunay.ErrDegenerateTriangulation to
// callers who never import the delaunay package directly.
var ErrDegenerateTriangulation = delaunay.ErrDegenerateTriangulation

// quadtreeMinPoints is the point-count threshold of spec §4.6 below which
// the quadtree's construction cost is not worth paying — a linear scan over
// a small set is already fast.
const quadtreeMinPoints = 100

// Config resolves the ambient knobs of spec §6 a Context needs beyond the
// algorithm and its options: whether to honor a borrowed point set in place
// or deep-copy it, and which SIMD lane widths the caller permits.
type Config struct {
	// Borrow, when true, lets the Context reference pts directly instead of
	// cloning it. The caller must not mutate pts for the Context's lifetime.
	Borrow bool
	SIMD   simdkernel.Config
}

// Context owns everything a gridding run needs to evaluate cells: the
// resolved algorithm and options, the point set, and whichever acceleration
// structures the algorithm and point count call for. Apart from the
// quadtree that EnsureQuadtreeForLinearFallback may attach before any
// worker starts, every field is read-only once New returns, so a *Context
// may be shared across worker goroutines without synchronization (spec §9's
// shared/private split — only evaluate.Hint is ever mutated per worker).
type Context struct {
	Algo    option.Algorithm
	Options option.Options
	Points  *pointset.Set

	owned bool // true if Points was deep-copied and should be released on Close

	shared evaluate.Shared
}

// Shared returns the acceleration structures usable as evaluate.Eval's
// shared argument.
func (c *Context) Shared() *evaluate.Shared {
	return &c.shared
}

// Close releases any point-set storage the Context deep-copied on
// construction. Safe to call on a Context built with Config.Borrow == true
// (a no-op in that case, since Points is caller-owned).
func (c *Context) Close() error {
	if c.owned {
		c.Points = nil
	}
	return nil
}

var errNilPoints = errors.New("gridctx: points must not be nil")

// needsQuadtree reports whether spec §4.6 calls for a quadtree: the
// nearest-neighbor evaluator, a point count large enough to amortize the
// build cost, and a search ellipse shape the quadtree's square-AOI query
// can serve (a circle or the unrestricted whole plane).
func needsQuadtree(algo option.Algorithm, opts option.Options, n int) bool {
	if algo != option.Nearest || n <= quadtreeMinPoints {
		return false
	}
	ellipse := pointset.Ellipse{Radius1: opts.Radius1, Radius2: opts.Radius2}
	return ellipse.IsCircle() || ellipse.IsWholePlane()
}

// needsDelaunay reports whether spec §4.4 calls for a triangulation: only
// the linear evaluator.
func needsDelaunay(algo option.Algorithm) bool {
	return algo == option.Linear
}

// needsSIMD reports whether spec §4.5 calls for aligned SIMD buffers: the
// invdistnn evaluator restricted to its vectorizable special case (power=2,
// no smoothing), with the caller permitting at least one lane width.
func needsSIMD(algo option.Algorithm, opts option.Options, cfg simdkernel.Config) bool {
	if algo != option.InvDistNearestNeighbor {
		return false
	}
	if opts.Power != 2 || opts.Smoothing != 0 {
		return false
	}
	return cfg.UseSSE || cfg.UseAVX
}
