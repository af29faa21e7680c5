package option

import (
	"fmt"
	"strconv"
	"strings"
)

// tagTable maps a lower-cased grammar tag to its Algorithm, built once from
// names so the two stay in sync without hand duplication.
var tagTable = func() map[string]Algorithm {
	m := make(map[string]Algorithm, len(names))
	for i, n := range names {
		m[n] = Algorithm(i)
	}
	return m
}()

// setter assigns a parsed decimal value into opts for one recognized key.
// Isolating each key behind a closure in a table, rather than a long
// switch, mirrors the Constructor-per-name table builder.api.BuildGraph
// dispatches through.
type setter func(opts *Options, v float64)

var keyTable = map[string]setter{
	"radius1":    func(o *Options, v float64) { o.Radius1 = v },
	"radius2":    func(o *Options, v float64) { o.Radius2 = v },
	"angle":      func(o *Options, v float64) { o.Angle = v },
	"nodata":     func(o *Options, v float64) { o.NoData = v },
	"min_points": func(o *Options, v float64) { o.MinPoints = uint32(v) },
	"max_points": func(o *Options, v float64) { o.MaxPoints = uint32(v) },
	"power":      func(o *Options, v float64) { o.Power = v },
	"smoothing":  func(o *Options, v float64) { o.Smoothing = v },
	"radius":     func(o *Options, v float64) { o.Radius = v },
}

// Parse parses a "name[:key=value]*" specification string (spec §6's
// grammar) into a resolved Algorithm and Options. An empty, well-formed
// input ("" or with only whitespace) resolves to a default InvDist record,
// per spec §4.1. Keys are case-insensitive; unrecognized keys are silently
// ignored; values that fail to parse as a decimal number return
// ErrInvalidOption. An unrecognized algorithm name returns
// ErrUnknownAlgorithm.
//
// Complexity: O(len(spec)).
func Parse(spec string) (Algorithm, Options, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return InvDist, Default(InvDist), nil
	}

	fields := strings.Split(spec, ":")
	name := strings.ToLower(strings.TrimSpace(fields[0]))
	if name == "" {
		name = names[InvDist]
	}

	algo, ok := tagTable[name]
	if !ok {
		return 0, Options{}, fmt.Errorf("option: %q: %w", name, ErrUnknownAlgorithm)
	}

	opts := Default(algo)
	for _, kv := range fields[1:] {
		if kv == "" {
			continue
		}
		key, val, found := strings.Cut(kv, "=")
		if !found {
			continue // malformed fragment with no '=': ignored, like an unknown key
		}
		key = strings.ToLower(strings.TrimSpace(key))
		set, known := keyTable[key]
		if !known {
			continue // unknown keys are silently ignored, per spec §4.1
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, Options{}, fmt.Errorf("option: key %q: %w", key, ErrInvalidOption)
		}
		set(&opts, v)
	}

	return algo, opts, nil
}
