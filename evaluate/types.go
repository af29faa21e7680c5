// Package evaluate implements the eleven per-cell evaluators of spec §4.2:
// pure functions of (options, points, query point, extras) that return a
// single cell value. Dispatch is a tagged-enum table lookup (spec §9's
// first alternative — "a tagged enum with a match in the evaluator entry
// point"), generalizing the teacher's builder.Constructor "closure per
// named variant, looked up by name" idiom (builder/api.go's BuildGraph)
// from topology names to algorithm names.
package evaluate

import (
	"errors"

	"github.com/fieldgrid/scattergrid/delaunay"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/quadtree"
	"github.com/fieldgrid/scattergrid/simdkernel"
)

// ErrUnknownAlgorithm indicates Eval was asked to dispatch an Algorithm
// value the table does not recognize. option.Parse never produces such a
// value; this guards programmatic construction of an Options/Algorithm
// pair that bypassed the parser.
var ErrUnknownAlgorithm = errors.New("evaluate: unknown algorithm")

// Shared holds the read-only acceleration structures a gridctx.Context
// builds once and every worker goroutine references concurrently: the
// quadtree (nearest-neighbor, or linear's hull-miss fallback), the Delaunay
// index (linear only), the
// SIMD-eligible aligned buffers (invdistnn power=2/smoothing=0 only), and
// the initial search-radius estimate used when radii are unset. All of it
// is read-only for the lifetime of a Process call, so Shared needs no
// synchronization once built — only Hint is mutated, and each worker owns
// its own Hint by value, per spec §9's shared/private split.
type Shared struct {
	Quadtree      *quadtree.Tree
	Delaunay      *delaunay.Index
	SIMD          *simdkernel.Buffers
	InitialRadius float64
}

// Hint is the per-worker mutable extra: the Delaunay walk-hint (the
// triangle index where this worker's previous cell landed). Each worker
// holds its own Hint by value so concurrent workers never write to shared
// memory, per spec §4.4/§9.
type Hint struct {
	Tri int32
}

// Func is the uniform evaluator signature of spec §4.2.
type Func func(pts *pointset.Set, opts option.Options, qx, qy float64, shared *Shared, hint *Hint) (float64, error)

var table = map[option.Algorithm]Func{
	option.InvDist:                invDist,
	option.InvDistNearestNeighbor: invDistNN,
	option.Average:                average,
	option.Nearest:                nearest,
	option.Minimum:                minimum,
	option.Maximum:                maximum,
	option.Range:                  rangeMetric,
	option.Count:                  count,
	option.AverageDistance:        averageDistance,
	option.AverageDistancePts:     averageDistancePts,
	option.Linear:                 linear,
}

// Eval dispatches to the evaluator for algo and invokes it with qx, qy.
// Complexity: O(1) dispatch, plus whatever the chosen evaluator costs.
func Eval(algo option.Algorithm, pts *pointset.Set, opts option.Options, qx, qy float64, shared *Shared, hint *Hint) (float64, error) {
	fn, ok := table[algo]
	if !ok {
		return 0, ErrUnknownAlgorithm
	}
	return fn(pts, opts, qx, qy, shared, hint)
}

func ellipseOf(o option.Options) pointset.Ellipse {
	return pointset.Ellipse{Radius1: o.Radius1, Radius2: o.Radius2, AngleDeg: o.Angle}
}
