package delaunay

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// precomputeBarycentric computes, for every triangle, the inverse of
// M = [[x0-x2, x1-x2], [y0-y2, y1-y2]] via gonum's LU-based Dense.Inverse —
// generalizing the teacher's matrix/ops/inverse.go Doolittle-LU inversion
// (there: arbitrary N x N) down to this engine's fixed 2x2 affine map.
func (idx *Index) precomputeBarycentric() error {
	for ti := range idx.triangles {
		t := &idx.triangles[ti]
		x0, y0 := idx.pts.X[t.v[0]], idx.pts.Y[t.v[0]]
		x1, y1 := idx.pts.X[t.v[1]], idx.pts.Y[t.v[1]]
		x2, y2 := idx.pts.X[t.v[2]], idx.pts.Y[t.v[2]]

		m := mat.NewDense(2, 2, []float64{x0 - x2, x1 - x2, y0 - y2, y1 - y2})
		var inv mat.Dense
		if err := inv.Inverse(m); err != nil {
			return fmt.Errorf("delaunay: triangle %d has zero area: %w (%v)", ti, ErrDegenerateTriangulation, err)
		}
		t.coeff = [4]float64{inv.At(0, 0), inv.At(0, 1), inv.At(1, 0), inv.At(1, 1)}
	}
	return nil
}

// Barycentric returns the three barycentric weights of query point (qx,qy)
// relative to triangle tri's vertices. The weights sum to 1 up to
// floating-point rounding; all three lie in [0,1] iff the point is inside
// the triangle.
//
// Complexity: O(1).
func (idx *Index) Barycentric(tri int32, qx, qy float64) (l0, l1, l2 float64) {
	t := &idx.triangles[tri]
	x2, y2 := idx.pts.X[t.v[2]], idx.pts.Y[t.v[2]]
	dx, dy := qx-x2, qy-y2

	l0 = t.coeff[0]*dx + t.coeff[1]*dy
	l1 = t.coeff[2]*dx + t.coeff[3]*dy
	l2 = 1 - l0 - l1
	return l0, l1, l2
}
