package gridctx

import (
	"github.com/fieldgrid/scattergrid/delaunay"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/quadtree"
)

// EnsureQuadtreeForLinearFallback implements spec §4.6's construction-cost
// avoidance for the linear algorithm: "if no quadtree was built, the driver
// first probes the window perimeter with locate to decide whether any
// interior cell could possibly fall outside the triangulation; if so, it
// retroactively builds a quadtree so that the nearest-neighbor fallback
// remains cheap." Called once by tiledriver.Run, before any worker starts,
// over the window actually passed to Process — never at New time, since a
// quadtree built here would otherwise be paid for on every linear Context
// regardless of whether its window ever queries outside the hull.
//
// A no-op unless c's algorithm is linear, a triangulation was built, and no
// quadtree already exists (either because New built one for the nearest
// evaluator — never true for linear — or a previous Process call on this
// same Context already did this probe).
func (c *Context) EnsureQuadtreeForLinearFallback(xMin, xMax, yMin, yMax float64, nx, ny int) {
	if c.Algo != option.Linear || c.shared.Delaunay == nil || c.shared.Quadtree != nil {
		return
	}
	if perimeterMissesHull(c.shared.Delaunay, xMin, xMax, yMin, yMax, nx, ny) {
		c.shared.Quadtree = quadtree.Build(c.Points)
	}
}

// perimeterMissesHull walks the window's border cells with Locate, reusing
// one hint across the whole walk the way a single worker would, and reports
// true the moment any border cell lands outside the triangulation's convex
// hull — the signal that some interior cell could miss it too.
func perimeterMissesHull(idx *delaunay.Index, xMin, xMax, yMin, yMax float64, nx, ny int) bool {
	if nx <= 0 || ny <= 0 {
		return false
	}

	dx := (xMax - xMin) / float64(nx)
	dy := (yMax - yMin) / float64(ny)
	center := func(i, j int) (float64, float64) {
		return xMin + (float64(i)+0.5)*dx, yMin + (float64(j)+0.5)*dy
	}

	var hint int32
	missesAt := func(i, j int) bool {
		cx, cy := center(i, j)
		tri, found := idx.Locate(hint, cx, cy)
		hint = tri
		return !found
	}

	for i := 0; i < nx; i++ {
		if missesAt(i, 0) || missesAt(i, ny-1) {
			return true
		}
	}
	for j := 0; j < ny; j++ {
		if missesAt(0, j) || missesAt(nx-1, j) {
			return true
		}
	}
	return false
}
