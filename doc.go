// Package scattergrid turns an unordered set of sample points into a
// regular raster by evaluating one of eleven interpolation or summary
// algorithms at every cell center.
//
// Typical usage:
//
//	algo, opts, err := scattergrid.ParseSpec("invdist:power=2:smoothing=0")
//	ctx, err := scattergrid.NewContext(algo, opts, x, y, z, scattergrid.Config{})
//	defer ctx.Close()
//	err = ctx.Process(window, buf, scattergrid.DefaultConfig(), func(fraction float64, tag string) bool {
//		return true // keep going
//	})
//
// Or, for a single call with no intermediate Context:
//
//	err := scattergrid.GridCreate("nearest", x, y, z, window, buf, scattergrid.Config{}, nil)
//
// The engine consumes three parallel point arrays and writes into a
// caller-owned raster buffer; it does not read vector data sources, write
// raster files, or handle coordinate reference systems — see
// github.com/fieldgrid/scattergrid/{pointset,option,evaluate,quadtree,
// delaunay,simdkernel,gridctx,tiledriver,rasterblit} for the components
// this package assembles.
package scattergrid
