package scattergrid

import (
	"errors"

	"github.com/fieldgrid/scattergrid/gridctx"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/tiledriver"
)

// Error kinds of spec §7. ErrUnknownAlgorithm and ErrDegenerateTriangulation
// are the same sentinel values option.Parse and gridctx.New return, so
// callers can use errors.Is against either this package's name or the
// owning package's.
var (
	ErrUnknownAlgorithm        = option.ErrUnknownAlgorithm
	ErrDegenerateTriangulation = gridctx.ErrDegenerateTriangulation
	ErrCancelled               = tiledriver.ErrCancelled

	// ErrOutOfMemory is reserved: Go's allocator reports exhaustion by
	// panicking rather than returning an error, so no path in this module
	// can actually produce it. It exists so the five documented error
	// kinds of spec §7 all have a representable value.
	ErrOutOfMemory = errors.New("scattergrid: out of memory")

	// ErrEvaluatorFailure is reserved: none of the eleven standard
	// evaluators ever return a non-nil error (spec §7).
	ErrEvaluatorFailure = errors.New("scattergrid: evaluator failure")
)
