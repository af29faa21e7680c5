// Package tiledriver implements the parallel tile-scanning driver of spec
// §4.7: it partitions an output raster window into interleaved row
// stripes, dispatches one worker goroutine per stripe, and aggregates
// progress and cancellation through a single mutex-guarded counter and
// condition variable — the same WaitGroup-plus-shared-state shape the
// teacher's concurrent drivers use, generalized from a fixed worker count
// to ALL_CPUS-resolved stripes over raster rows instead of graph edges.
package tiledriver

import (
	"errors"
	"runtime"

	"github.com/fieldgrid/scattergrid/rasterblit"
)

// ErrCancelled indicates the progress callback returned false.
var ErrCancelled = errors.New("tiledriver: cancelled")

// maxThreads bounds ALL_CPUS resolution regardless of host core count
// (spec §4.7).
const maxThreads = 128

// Config resolves the NUM_THREADS configuration knob of spec §6.
type Config struct {
	// NumThreads is the requested worker count unless AllCPUs is set;
	// ResolveThreads caps it at 128 and at ny/2. A value <= 1 means
	// single-threaded.
	NumThreads int
	AllCPUs    bool
}

// ResolveThreads implements spec §4.7's thread-count resolution: ALL_CPUS
// resolves to the logical CPU count, capped at 128 and further capped at
// ny/2 so no worker ever owns fewer than two rows.
func ResolveThreads(cfg Config, ny int) int {
	n := cfg.NumThreads
	if cfg.AllCPUs {
		n = runtime.NumCPU()
	}
	if n > maxThreads {
		n = maxThreads
	}
	if maxByRows := ny / 2; maxByRows >= 1 && n > maxByRows {
		n = maxByRows
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Window is the output raster geometry of spec §3: cell (i,j) is centered
// at (x_min + (i+0.5)*dx, y_min + (j+0.5)*dy).
type Window struct {
	XMin, XMax, YMin, YMax float64
	NX, NY                 int
	Elem                   rasterblit.ElemType
}

// CellCenter returns the sample coordinates for output cell (i,j).
func (w Window) CellCenter(i, j int) (float64, float64) {
	dx := (w.XMax - w.XMin) / float64(w.NX)
	dy := (w.YMax - w.YMin) / float64(w.NY)
	return w.XMin + (float64(i)+0.5)*dx, w.YMin + (float64(j)+0.5)*dy
}

// ProgressFunc reports fraction-complete in [0,1] under a descriptive tag;
// returning false requests cancellation (spec §6).
type ProgressFunc func(fraction float64, tag string) bool
