package evaluate

import (
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/quadtree"
)

// maxRadiusDoublings bounds the radius-doubling retry of the quadtree-backed
// nearest evaluator when no fixed radius was given (spec §4.3/§4.6: "double
// the radius... until a hit is found or the radius becomes unreasonable").
const maxRadiusDoublings = 30

// nearest implements the nearest-neighbor evaluator of spec §4.2. When
// shared carries a quadtree (built only for circular or unrestricted search
// ellipses, per spec §4.3/§4.6), the query runs as an expanding axis-aligned
// box search over the tree; otherwise it falls back to a full linear scan.
func nearest(pts *pointset.Set, o option.Options, qx, qy float64, shared *Shared, _ *Hint) (float64, error) {
	ellipse := ellipseOf(o)
	if shared != nil && shared.Quadtree != nil && (ellipse.IsCircle() || ellipse.IsWholePlane()) {
		return nearestQuadtree(pts, o, ellipse, qx, qy, shared), nil
	}
	idx, found := bestWithin(pts, allIndices(pts.Len()), ellipse, qx, qy)
	if !found {
		return o.NoData, nil
	}
	return pts.Z[idx], nil
}

// nearestQuadtree runs the quadtree-accelerated search. When the ellipse is
// unrestricted (radii unset, IsWholePlane), radius1/radius2 carry no usable
// search limit, so the search starts from shared.InitialRadius and doubles
// until a candidate is found or the doubling cap is hit. A genuinely
// circular ellipse (explicit equal radii) never doubles: its radius is a
// hard user-specified limit, not an estimate.
func nearestQuadtree(pts *pointset.Set, o option.Options, ellipse pointset.Ellipse, qx, qy float64, shared *Shared) float64 {
	estimating := ellipse.IsWholePlane()
	radius := ellipse.Radius1
	if estimating {
		radius = shared.InitialRadius
		if radius <= 0 {
			radius = 1
		}
	}

	for attempt := 0; attempt < maxRadiusDoublings; attempt++ {
		rect := quadtree.Rect{MinX: qx - radius, MinY: qy - radius, MaxX: qx + radius, MaxY: qy + radius}
		candidates := shared.Quadtree.Query(rect)
		if idx, found := bestWithin(pts, candidates, ellipse, qx, qy); found {
			return pts.Z[idx]
		}
		if !estimating {
			return o.NoData
		}
		radius *= 2
	}
	return o.NoData
}
