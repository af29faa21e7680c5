package evaluate

import (
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"github.com/fieldgrid/scattergrid/quadtree"
)

// linear implements the linear evaluator of spec §4.2/§4.4: locate the
// triangle containing (qx,qy) by directed walk from hint.Tri, interpolate
// the barycentric combination of its three vertex values on a hit, or fall
// back to nearest-neighbor within o.Radius when the query misses the hull.
// hint.Tri is updated in place so the next call from this worker starts its
// walk at the previously located triangle, per spec §4.4's per-worker
// walk-hint.
func linear(pts *pointset.Set, o option.Options, qx, qy float64, shared *Shared, hint *Hint) (float64, error) {
	if shared == nil || shared.Delaunay == nil {
		return o.NoData, nil
	}

	tri, found := shared.Delaunay.Locate(hint.Tri, qx, qy)
	hint.Tri = tri
	if found {
		l0, l1, l2 := shared.Delaunay.Barycentric(tri, qx, qy)
		v0, v1, v2 := shared.Delaunay.Vertices(tri)
		return l0*pts.Z[v0] + l1*pts.Z[v1] + l2*pts.Z[v2], nil
	}
	return linearFallback(pts, o, qx, qy, shared), nil
}

// linearFallback implements spec §4.4's hull-miss rule: radius==0 disables
// the fallback entirely (nodata), radius<0 searches the whole point set
// unrestricted, and radius>0 searches a fixed circular neighborhood,
// quadtree-accelerated when one is available.
func linearFallback(pts *pointset.Set, o option.Options, qx, qy float64, shared *Shared) float64 {
	if o.Radius == 0 {
		return o.NoData
	}
	if o.Radius < 0 {
		idx, found := bestWithin(pts, allIndices(pts.Len()), pointset.Ellipse{}, qx, qy)
		if !found {
			return o.NoData
		}
		return pts.Z[idx]
	}

	ellipse := pointset.Ellipse{Radius1: o.Radius, Radius2: o.Radius}
	var candidates []int32
	if shared != nil && shared.Quadtree != nil {
		rect := quadtree.Rect{MinX: qx - o.Radius, MinY: qy - o.Radius, MaxX: qx + o.Radius, MaxY: qy + o.Radius}
		candidates = shared.Quadtree.Query(rect)
	} else {
		candidates = allIndices(pts.Len())
	}
	idx, found := bestWithin(pts, candidates, ellipse, qx, qy)
	if !found {
		return o.NoData
	}
	return pts.Z[idx]
}
