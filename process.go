package scattergrid

import (
	"github.com/fieldgrid/scattergrid/rasterblit"
	"github.com/fieldgrid/scattergrid/tiledriver"
)

// Window is the output raster geometry of spec §3: cell (i,j) is centered
// at (x_min + (i+0.5)*dx, y_min + (j+0.5)*dy).
type Window struct {
	XMin, XMax, YMin, YMax float64
	NX, NY                 int
	Elem                   rasterblit.ElemType
}

func (w Window) toTileDriver() tiledriver.Window {
	return tiledriver.Window{
		XMin: w.XMin, XMax: w.XMax, YMin: w.YMin, YMax: w.YMax,
		NX: w.NX, NY: w.NY, Elem: w.Elem,
	}
}

// ProgressFunc reports fraction-complete in [0,1] under a descriptive tag;
// returning false requests cancellation (spec §6).
type ProgressFunc func(fraction float64, tag string) bool

// Process evaluates every cell of window using ctx's resolved algorithm and
// blits the results into buf, reporting progress as rows complete (every
// row when single-threaded; rows finished together may share one report
// when multi-threaded).
// A nil progress is treated as "always continue". Returns ErrCancelled if
// progress ever returns false.
func (c *Context) Process(window Window, buf *rasterblit.Buffer, cfg Config, progress ProgressFunc) error {
	if progress == nil {
		progress = func(float64, string) bool { return true }
	}
	return tiledriver.Run(c.inner, window.toTileDriver(), buf, cfg.tiledriverConfig(), tiledriver.ProgressFunc(progress))
}
