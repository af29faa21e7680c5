package delaunay

import (
	"math"

	"github.com/fieldgrid/scattergrid/pointset"
)

// edgeKey canonically identifies an undirected edge by its two endpoint
// indices, smaller first, so both triangles sharing it hash to one key.
type edgeKey struct{ a, b int32 }

func canon(a, b int32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Build triangulates pts via incremental Bowyer-Watson insertion against a
// bounding super-triangle, strips any facet touching a super-triangle
// vertex, then precomputes each remaining facet's barycentric coefficients
// and neighbor links.
//
// Complexity: O(N^2) worst case — this favors a small, self-contained
// triangulator over a faster divide-and-conquer one, since no external
// mesh/triangulation library appears anywhere in the retrieved corpus (see
// DESIGN.md). Fine for the point counts a raster-gridding workload targets.
func Build(pts *pointset.Set) (*Index, error) {
	n := pts.Len()
	if n < 3 {
		return nil, ErrDegenerateTriangulation
	}
	if allCollinear(pts) {
		return nil, ErrDegenerateTriangulation
	}

	minX, minY, maxX, maxY := pts.Bounds()
	delta := math.Max(maxX-minX, maxY-minY)
	if delta <= 0 {
		delta = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	superBase := int32(n)
	superX := [3]float64{midX - 20*delta, midX, midX + 20*delta}
	superY := [3]float64{midY - delta, midY + 20*delta, midY - delta}

	coordX := func(i int32) float64 {
		if i < superBase {
			return pts.X[i]
		}
		return superX[i-superBase]
	}
	coordY := func(i int32) float64 {
		if i < superBase {
			return pts.Y[i]
		}
		return superY[i-superBase]
	}

	tris := [][3]int32{{superBase, superBase + 1, superBase + 2}}
	if orient2D(coordX(tris[0][0]), coordY(tris[0][0]), coordX(tris[0][1]), coordY(tris[0][1]), coordX(tris[0][2]), coordY(tris[0][2])) < 0 {
		tris[0][0], tris[0][1] = tris[0][1], tris[0][0]
	}

	for i := int32(0); i < int32(n); i++ {
		px, py := pts.X[i], pts.Y[i]

		var bad []int
		for ti, t := range tris {
			if inCircumcircle(coordX(t[0]), coordY(t[0]), coordX(t[1]), coordY(t[1]), coordX(t[2]), coordY(t[2]), px, py) {
				bad = append(bad, ti)
			}
		}

		edgeCount := make(map[edgeKey]int, len(bad)*3)
		edgeOrdered := make(map[edgeKey][2]int32, len(bad)*3)
		for _, ti := range bad {
			t := tris[ti]
			edges := [3][2]int32{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
			for _, e := range edges {
				k := canon(e[0], e[1])
				edgeCount[k]++
				edgeOrdered[k] = e
			}
		}

		var polygon [][2]int32
		for k, cnt := range edgeCount {
			if cnt == 1 {
				polygon = append(polygon, edgeOrdered[k])
			}
		}

		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}
		kept := tris[:0]
		for ti, t := range tris {
			if !badSet[ti] {
				kept = append(kept, t)
			}
		}
		tris = kept

		for _, e := range polygon {
			nt := [3]int32{e[0], e[1], i}
			if orient2D(coordX(nt[0]), coordY(nt[0]), coordX(nt[1]), coordY(nt[1]), coordX(nt[2]), coordY(nt[2])) < 0 {
				nt[0], nt[1] = nt[1], nt[0]
			}
			tris = append(tris, nt)
		}
	}

	final := tris[:0]
	for _, t := range tris {
		if t[0] >= superBase || t[1] >= superBase || t[2] >= superBase {
			continue
		}
		final = append(final, t)
	}

	if len(final) == 0 {
		return nil, ErrDegenerateTriangulation
	}

	idx := &Index{pts: pts, triangles: make([]triangle, len(final))}
	for i, t := range final {
		idx.triangles[i].v = t
	}

	if err := idx.computeNeighbors(); err != nil {
		return nil, err
	}
	if err := idx.precomputeBarycentric(); err != nil {
		return nil, err
	}

	return idx, nil
}

// allCollinear reports whether every point in pts lies on a single line
// (including the degenerate case where every point coincides).
func allCollinear(pts *pointset.Set) bool {
	n := pts.Len()
	if n < 3 {
		return true
	}
	x0, y0 := pts.X[0], pts.Y[0]
	var x1, y1 float64
	haveSecond := false
	for i := 1; i < n; i++ {
		if pts.X[i] != x0 || pts.Y[i] != y0 {
			x1, y1 = pts.X[i], pts.Y[i]
			haveSecond = true
			break
		}
	}
	if !haveSecond {
		return true
	}
	for i := 0; i < n; i++ {
		if orient2D(x0, y0, x1, y1, pts.X[i], pts.Y[i]) != 0 {
			return false
		}
	}
	return true
}
