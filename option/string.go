package option

import (
	"strconv"
	"strings"
)

// String round-trips algo and opts back into the "name:key=value:..."
// grammar Parse accepts. Only fields meaningful for algo are emitted, so
// re-parsing String's output reproduces an equivalent Options value.
// This is the supplemental serialization named in SPEC_FULL.md §7 (the
// original's VRT-driver string-form for a resolved grid algorithm).
func String(algo Algorithm, opts Options) string {
	var b strings.Builder
	b.WriteString(algo.String())

	write := func(key string, v float64) {
		b.WriteByte(':')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	switch algo {
	case InvDist, InvDistNearestNeighbor:
		write("radius1", opts.Radius1)
		write("radius2", opts.Radius2)
		write("angle", opts.Angle)
		write("power", opts.Power)
		write("smoothing", opts.Smoothing)
		write("max_points", float64(opts.MaxPoints))
		write("min_points", float64(opts.MinPoints))
		write("nodata", opts.NoData)
	case Linear:
		write("radius", opts.Radius)
		write("nodata", opts.NoData)
	default:
		write("radius1", opts.Radius1)
		write("radius2", opts.Radius2)
		write("angle", opts.Angle)
		write("min_points", float64(opts.MinPoints))
		write("nodata", opts.NoData)
	}

	return b.String()
}
