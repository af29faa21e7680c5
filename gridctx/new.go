package gridctx

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fieldgrid/scattergrid/delaunay"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/quadtree"
	"github.com/fieldgrid/scattergrid/simdkernel"
)

// New resolves pts and cfg against algo/opts into a ready Context, building
// whichever acceleration structures spec §4.6 calls for. If the linear
// evaluator's triangulation is degenerate (fewer than 3 points, or every
// point collinear), New returns ErrDegenerateTriangulation wrapped with
// context.
//
// Complexity: O(N) to O(N log N) for the quadtree, O(N^2) worst case for
// the triangulation (see delaunay.Build) — all paid once, here, rather than
// per cell.
func New(algo option.Algorithm, opts option.Options, pts *pointset.Set, cfg Config) (*Context, error) {
	if pts == nil {
		return nil, errNilPoints
	}

	owned := false
	points := pts
	if !cfg.Borrow {
		points = pts.Clone()
		owned = true
	}

	c := &Context{
		Algo:    algo,
		Options: opts,
		Points:  points,
		owned:   owned,
	}
	c.shared.InitialRadius = points.TypicalSpacing()

	// The linear evaluator's hull-miss fallback is itself a nearest-neighbor
	// search, but spec §4.6 says not to pay for its quadtree eagerly here:
	// Process (tiledriver.Run) probes the window perimeter with Locate
	// first and calls EnsureQuadtreeForLinearFallback only if that probe
	// finds a cell outside the hull.
	buildQuadtree := needsQuadtree(algo, opts, points.Len())
	buildDelaunay := needsDelaunay(algo)
	buildSIMD := needsSIMD(algo, opts, cfg.SIMD)

	// These three acceleration structures are independent read-only
	// precomputations over the same point set, so build whichever are
	// needed concurrently instead of paying their cost serially.
	var g errgroup.Group
	if buildQuadtree {
		g.Go(func() error {
			c.shared.Quadtree = quadtree.Build(points)
			return nil
		})
	}
	if buildDelaunay {
		g.Go(func() error {
			idx, err := delaunay.Build(points)
			if err != nil {
				return err
			}
			c.shared.Delaunay = idx
			return nil
		})
	}
	if buildSIMD {
		g.Go(func() error {
			width := simdkernel.Select(cfg.SIMD)
			if width != simdkernel.Scalar {
				c.shared.SIMD = simdkernel.Build(points, width)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gridctx: %w", err)
	}

	return c, nil
}
