package evaluate

import (
	"math"

	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
)

// singularR2 is the squared-distance threshold below which a query point is
// considered coincident with a sample (spec §4.2, §9 "keep this behavior").
const singularR2 = 1e-13

// invDist implements invdist (spec §4.2): inverse-distance-to-a-power
// weighting over the samples inside the search ellipse, honoring
// min_points/max_points. An exact hit returns the sample's Z directly.
func invDist(pts *pointset.Set, o option.Options, qx, qy float64, _ *Shared, _ *Hint) (float64, error) {
	ellipse := ellipseOf(o)
	var num, den float64
	var n uint32
	for i := 0; i < pts.Len(); i++ {
		px, py := pts.X[i], pts.Y[i]
		if !ellipse.Contains(px, py, qx, qy) {
			continue
		}
		rx, ry := px-qx, py-qy
		r2 := rx*rx + ry*ry
		if o.Smoothing != 0 {
			r2 += o.Smoothing * o.Smoothing
		}
		if r2 < singularR2 {
			return pts.Z[i], nil
		}
		w := 1 / math.Pow(r2, o.Power/2)
		num += w * pts.Z[i]
		den += w
		n++
		// n >= max_points (not n > max_points) so exactly max_points samples
		// are ever admitted; spec §9's resolved open question.
		if o.MaxPoints > 0 && n >= o.MaxPoints {
			break
		}
	}
	if n == 0 || n < o.MinPoints || den == 0 {
		return o.NoData, nil
	}
	return num / den, nil
}

// invDistNN implements invdistnn (spec §4.2): the same weighting with no
// search-ellipse filter and no min_points/max_points cap, over every sample
// in the set. When shared carries SIMD-eligible buffers (power=2,
// smoothing=0, a supported lane width was selected) the vectorized kernel
// is used instead of the scalar loop below.
func invDistNN(pts *pointset.Set, o option.Options, qx, qy float64, shared *Shared, _ *Hint) (float64, error) {
	if shared != nil && shared.SIMD != nil && o.Power == 2 && o.Smoothing == 0 {
		v, ok := simdInvDistNN(shared, qx, qy, o.NoData)
		if !ok {
			return o.NoData, nil
		}
		return v, nil
	}

	var num, den float64
	for i := 0; i < pts.Len(); i++ {
		rx, ry := pts.X[i]-qx, pts.Y[i]-qy
		r2 := rx*rx + ry*ry
		if o.Smoothing != 0 {
			r2 += o.Smoothing * o.Smoothing
		}
		if r2 < singularR2 {
			return pts.Z[i], nil
		}
		var w float64
		if o.Power == 2 {
			w = 1 / r2
		} else {
			w = 1 / math.Pow(r2, o.Power/2)
		}
		num += w * pts.Z[i]
		den += w
	}
	if den == 0 {
		return o.NoData, nil
	}
	return num / den, nil
}
