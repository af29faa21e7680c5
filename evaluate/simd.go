package evaluate

import "github.com/fieldgrid/scattergrid/simdkernel"

// simdInvDistNN bridges the float64 evaluator world to simdkernel's aligned
// float32 buffers, per spec §4.5.
func simdInvDistNN(shared *Shared, qx, qy, nodata float64) (float64, bool) {
	v, ok := simdkernel.InvDistNN(shared.SIMD, float32(qx), float32(qy), float32(nodata))
	return float64(v), ok
}
