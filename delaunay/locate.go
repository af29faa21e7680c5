package delaunay

// Locate walks from the triangle at index hint to the triangle containing
// query point (qx,qy), per spec §4.4's directed-walk algorithm: compute
// barycentric weights for the current triangle; if all are non-negative
// (within locateEpsilon), return it; otherwise cross the edge opposite the
// most negative weight. If that edge has no neighbor, the point lies
// outside the convex hull and Locate returns the last triangle visited —
// the caller's updated walk-hint — with found=false.
//
// Because tiledriver scans output cells in row-major order, consecutive
// queries within one worker are close together, so this walk is typically
// O(1) per cell (spec §4.4's "walk-hint reuse" note); worst case O(T).
func (idx *Index) Locate(hint int32, qx, qy float64) (tri int32, found bool) {
	n := int32(len(idx.triangles))
	if n == 0 {
		return 0, false
	}
	if hint < 0 || hint >= n {
		hint = 0
	}

	current := hint
	for steps := int32(0); steps <= n; steps++ {
		l0, l1, l2 := idx.Barycentric(current, qx, qy)

		if l0 >= -locateEpsilon && l1 >= -locateEpsilon && l2 >= -locateEpsilon {
			return current, true
		}

		worst := 0
		worstVal := l0
		if l1 < worstVal {
			worst, worstVal = 1, l1
		}
		if l2 < worstVal {
			worst, worstVal = 2, l2
		}

		next := idx.triangles[current].neighbors[worst]
		if next < 0 {
			return current, false
		}
		current = next
	}

	return current, false
}
