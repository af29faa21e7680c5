package scattergrid

import "github.com/fieldgrid/scattergrid/rasterblit"

// GridCreate is the one-shot convenience of spec §6's engine API: parse
// spec, build a Context over x/y/z, run Process against window/buf, and
// release the Context — all in one call.
func GridCreate(spec string, x, y, z []float64, window Window, buf *rasterblit.Buffer, cfg Config, progress ProgressFunc) error {
	algo, opts, err := ParseSpec(spec)
	if err != nil {
		return err
	}
	ctx, err := NewContext(algo, opts, x, y, z, cfg)
	if err != nil {
		return err
	}
	defer ctx.Close()
	return ctx.Process(window, buf, cfg, progress)
}
