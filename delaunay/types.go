// Package delaunay builds a Delaunay triangulation over a pointset.Set and
// precomputes, per facet, the barycentric-coordinate affine map needed by
// the linear-interpolation evaluator (spec §4.4).
//
// Triangles and their neighbor links live in arena slices addressed by
// index, per spec §9's "index-into-arena" design note, rather than as a
// pointer-linked mesh. This lets an Index be shared read-only across
// worker goroutines with no synchronization once Build returns.
package delaunay

import (
	"errors"

	"github.com/fieldgrid/scattergrid/pointset"
)

// ErrDegenerateTriangulation indicates the point set has fewer than 3
// distinct points, or all points are collinear, so no triangle can be
// formed. Surfaced from Build, per spec §4.4/§4.6.
var ErrDegenerateTriangulation = errors.New("delaunay: degenerate point set (collinear or < 3 distinct points)")

// locateEpsilon tolerates floating-point noise when deciding whether a
// barycentric weight is "non-negative enough" to count as inside a facet.
const locateEpsilon = 1e-9

// triangle is one facet of the triangulation: three vertex indices into the
// originating pointset.Set (ordered so edge i, between v[(i+1)%3] and
// v[(i+2)%3], is opposite v[i]), the neighbor across each of those edges
// (-1 on the convex hull boundary), and the precomputed affine-map
// coefficients for Barycentric.
type triangle struct {
	v         [3]int32
	neighbors [3]int32 // neighbors[i] is the triangle across the edge opposite v[i]
	// coeff is the inverse of M = [[x0-x2, x1-x2], [y0-y2, y1-y2]],
	// flattened row-major: [a b; c d]. Barycentric solves
	// (lambda0, lambda1) = Minv * (qx-x2, qy-y2), lambda2 = 1-lambda0-lambda1.
	coeff [4]float64
}

// Index is a built Delaunay triangulation ready for Locate/Barycentric
// queries. The zero value is not usable; construct with Build.
type Index struct {
	pts       *pointset.Set
	triangles []triangle
}

// NumTriangles returns the number of facets in the triangulation.
func (idx *Index) NumTriangles() int {
	return len(idx.triangles)
}

// Vertices returns the three point-set indices of triangle tri.
func (idx *Index) Vertices(tri int32) (v0, v1, v2 int32) {
	t := idx.triangles[tri]
	return t.v[0], t.v[1], t.v[2]
}
