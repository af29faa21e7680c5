package scattergrid

import (
	"github.com/fieldgrid/scattergrid/gridctx"
	"github.com/fieldgrid/scattergrid/option"
	"github.com/fieldgrid/scattergrid/pointset"
)

// ParseSpec parses a "name[:key=value]*" algorithm specification (spec
// §4.1/§6) into a validated Algorithm and Options record.
func ParseSpec(spec string) (option.Algorithm, option.Options, error) {
	return option.Parse(spec)
}

// Context owns the option record, point arrays, and any acceleration
// structures (quadtree, Delaunay index, SIMD buffers) a Process call
// needs. Build one with NewContext; release it with Close. A Context must
// not be used from more than one Process call at a time (spec §5).
type Context struct {
	inner *gridctx.Context
}

// NewContext builds a Context for algo/opts over the point arrays x, y, z.
// Config.Borrow controls whether the arrays are referenced directly
// (caller must not mutate them for the Context's lifetime) or deep-copied.
// Fails with ErrDegenerateTriangulation if algo is Linear and the points
// are fewer than 3 or all collinear.
func NewContext(algo option.Algorithm, opts option.Options, x, y, z []float64, cfg Config) (*Context, error) {
	pts, err := pointset.New(x, y, z)
	if err != nil {
		return nil, err
	}
	inner, err := gridctx.New(algo, opts, pts, cfg.gridctxConfig())
	if err != nil {
		return nil, err
	}
	return &Context{inner: inner}, nil
}

// Close releases every allocation the Context owns.
func (c *Context) Close() error {
	return c.inner.Close()
}
