// Package option implements the algorithm-name-and-parameters grammar of
// spec §4.1/§6: parsing "name:key=value:..." into a validated Algorithm tag
// and Options record. Keys are case-insensitive, unknown keys are ignored,
// and the only hard parse errors are an unrecognized name and a recognized
// key whose value is not a decimal number.
package option

import "errors"

// Algorithm names one of the eleven gridding algorithms of spec §2/§6.
type Algorithm int

const (
	InvDist Algorithm = iota
	InvDistNearestNeighbor
	Average
	Nearest
	Minimum
	Maximum
	Range
	Count
	AverageDistance
	AverageDistancePts
	Linear
)

// names maps each Algorithm to its grammar tag (spec §6) and back.
var names = [...]string{
	InvDist:                "invdist",
	InvDistNearestNeighbor: "invdistnn",
	Average:                "average",
	Nearest:                "nearest",
	Minimum:                "minimum",
	Maximum:                "maximum",
	Range:                  "range",
	Count:                  "count",
	AverageDistance:        "average_distance",
	AverageDistancePts:     "average_distance_pts",
	Linear:                 "linear",
}

// String returns the grammar tag for a, e.g. "invdist".
func (a Algorithm) String() string {
	if int(a) < 0 || int(a) >= len(names) {
		return "unknown"
	}
	return names[a]
}

// ErrUnknownAlgorithm indicates the spec string names an algorithm tag this
// package does not recognize.
var ErrUnknownAlgorithm = errors.New("option: unknown algorithm")

// ErrInvalidOption indicates a recognized key had a value that could not be
// parsed as a decimal number.
var ErrInvalidOption = errors.New("option: invalid option value")

// Options is the tagged-union option record of spec §3. Every field applies
// to at least one algorithm; fields not meaningful for the resolved
// Algorithm are simply left at their zero/default value and ignored by the
// evaluator for that algorithm.
type Options struct {
	Radius1 float64 // search ellipse semi-axis 1, >= 0
	Radius2 float64 // search ellipse semi-axis 2, >= 0
	Angle   float64 // ellipse rotation, degrees, counter-clockwise

	NoData     float64 // sentinel value for "no result"
	MinPoints  uint32  // minimum sample count required, 0 = no minimum
	MaxPoints  uint32  // invdist only: cap on samples admitted, 0 = unlimited
	Power      float64 // invdist only: weighting exponent
	Smoothing  float64 // invdist only: smoothing term added to r^2

	Radius float64 // linear only: hull-miss fallback radius; <0 unlimited, 0 disabled
}

// Default returns the zero-configured Options for algo: power=2,
// smoothing=0, radius1=radius2=angle=0, max_points=0, min_points=0,
// nodata=0, radius=-1 (meaningful only for Linear), per spec §4.1.
func Default(algo Algorithm) Options {
	// Radius defaults to -1 (unlimited hull-miss fallback); it is only
	// meaningful for Linear, but is harmless as a default for every other
	// algorithm since they never read it.
	return Options{
		Power:  2,
		Radius: -1,
	}
}

// Radii returns the search ellipse described by o.
func (o Options) Radii() (radius1, radius2, angle float64) {
	return o.Radius1, o.Radius2, o.Angle
}
