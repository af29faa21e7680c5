package evaluate

import (
	"math"

	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
	"gonum.org/v1/gonum/floats"
)

// pointsInEllipse returns the indices of every sample inside the search
// ellipse described by o, centered at (qx,qy). Shared by every "metric"
// evaluator of spec §4.2 (average, minimum, maximum, range, count, the two
// average-distance variants) so the ellipse-membership scan is written once.
func pointsInEllipse(pts *pointset.Set, ellipse pointset.Ellipse, qx, qy float64) []int32 {
	var idx []int32
	for i := 0; i < pts.Len(); i++ {
		if ellipse.Contains(pts.X[i], pts.Y[i], qx, qy) {
			idx = append(idx, int32(i))
		}
	}
	return idx
}

func gatherZ(pts *pointset.Set, idx []int32) []float64 {
	zs := make([]float64, len(idx))
	for k, i := range idx {
		zs[k] = pts.Z[i]
	}
	return zs
}

func average(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	idx := pointsInEllipse(pts, ellipseOf(o), qx, qy)
	if len(idx) == 0 || uint32(len(idx)) < o.MinPoints {
		return o.NoData, nil
	}
	zs := gatherZ(pts, idx)
	return floats.Sum(zs) / float64(len(zs)), nil
}

func minimum(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	idx := pointsInEllipse(pts, ellipseOf(o), qx, qy)
	if len(idx) == 0 || uint32(len(idx)) < o.MinPoints {
		return o.NoData, nil
	}
	return floats.Min(gatherZ(pts, idx)), nil
}

func maximum(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	idx := pointsInEllipse(pts, ellipseOf(o), qx, qy)
	if len(idx) == 0 || uint32(len(idx)) < o.MinPoints {
		return o.NoData, nil
	}
	return floats.Max(gatherZ(pts, idx)), nil
}

func rangeMetric(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	idx := pointsInEllipse(pts, ellipseOf(o), qx, qy)
	if len(idx) == 0 || uint32(len(idx)) < o.MinPoints {
		return o.NoData, nil
	}
	zs := gatherZ(pts, idx)
	return floats.Max(zs) - floats.Min(zs), nil
}

func count(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	idx := pointsInEllipse(pts, ellipseOf(o), qx, qy)
	if uint32(len(idx)) < o.MinPoints {
		return o.NoData, nil
	}
	return float64(len(idx)), nil
}

func averageDistance(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	idx := pointsInEllipse(pts, ellipseOf(o), qx, qy)
	if len(idx) == 0 || uint32(len(idx)) < o.MinPoints {
		return o.NoData, nil
	}
	var sum float64
	for _, i := range idx {
		dx, dy := pts.X[i]-qx, pts.Y[i]-qy
		sum += math.Hypot(dx, dy)
	}
	return sum / float64(len(idx)), nil
}

// averageDistancePts is the only O(k²) evaluator: the mean pairwise
// distance between every pair of samples inside the ellipse, independent of
// the query point beyond selecting the neighborhood (spec §4.2).
func averageDistancePts(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	idx := pointsInEllipse(pts, ellipseOf(o), qx, qy)
	k := len(idx)
	if k < 2 || uint32(k) < o.MinPoints {
		return o.NoData, nil
	}
	var sum float64
	var pairs int
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			dx := pts.X[idx[a]] - pts.X[idx[b]]
			dy := pts.Y[idx[a]] - pts.Y[idx[b]]
			sum += math.Hypot(dx, dy)
			pairs++
		}
	}
	return sum / float64(pairs), nil
}
