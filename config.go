package scattergrid

import (
	"github.com/fieldgrid/scattergrid/gridctx"
	"github.com/fieldgrid/scattergrid/simdkernel"
	"github.com/fieldgrid/scattergrid/tiledriver"
)

// Config resolves the configuration knobs of spec §6: thread count, which
// SIMD kernels are permitted, and whether NewContext may borrow the
// caller's point arrays instead of deep-copying them.
type Config struct {
	// NumThreads is the requested worker count unless AllCPUs is set
	// (capped at 128 and at half the window's rows); <= 1 means
	// single-threaded.
	NumThreads int
	AllCPUs    bool

	// UseSSE/UseAVX gate the 128-bit/256-bit SIMD kernels (spec §6);
	// actual selection still depends on runtime CPU feature detection.
	UseSSE bool
	UseAVX bool

	// Borrow lets NewContext reference the caller's X/Y/Z slices directly.
	// The caller must not mutate them while any Context built from them is
	// alive. Defaults to false (defensive copy).
	Borrow bool
}

// DefaultConfig matches spec §6's stated defaults: ALL_CPUS threads, both
// SIMD kernels permitted.
func DefaultConfig() Config {
	return Config{AllCPUs: true, UseSSE: true, UseAVX: true}
}

func (c Config) gridctxConfig() gridctx.Config {
	return gridctx.Config{
		Borrow: c.Borrow,
		SIMD:   simdkernel.Config{UseSSE: c.UseSSE, UseAVX: c.UseAVX},
	}
}

func (c Config) tiledriverConfig() tiledriver.Config {
	return tiledriver.Config{NumThreads: c.NumThreads, AllCPUs: c.AllCPUs}
}
