package evaluate

import (
	"github.com/fieldgrid/scattergrid/pointset"
)

// bestWithin scans candidates and returns the index of the strictly closest
// sample to (qx,qy) that lies inside ellipse, or found=false if none do.
// Ties are broken by scan order (strict less-than never replaces an
// equally-close earlier candidate) — spec §9's standardized tie-break rule,
// used by both the nearest evaluator and linear's hull-miss fallback so the
// two never disagree on what "closest" means.
func bestWithin(pts *pointset.Set, candidates []int32, ellipse pointset.Ellipse, qx, qy float64) (int32, bool) {
	best := int32(-1)
	bestDist := -1.0
	for _, i := range candidates {
		if !ellipse.Contains(pts.X[i], pts.Y[i], qx, qy) {
			continue
		}
		dx, dy := pts.X[i]-qx, pts.Y[i]-qy
		d2 := dx*dx + dy*dy
		if best < 0 || d2 < bestDist {
			bestDist = d2
			best = i
		}
	}
	return best, best >= 0
}

func allIndices(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}
