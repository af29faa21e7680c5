// Package simdkernel implements the aligned-f32 inverse-distance-squared
// hot loops of spec §4.5: two lane widths (128-bit/4-lane and
// 256-bit/8-lane, each unrolled x2) selected at Context construction time
// by runtime CPU feature detection, used only for invdistnn with power=2,
// smoothing=0.
//
// This module carries no cgo and no hand-written assembly, so "lanes" here
// are plain unrolled float32 arithmetic over the aligned buffers rather
// than SSE2/AVX2 intrinsics — the portable equivalent a pure-Go codebase
// reaches for (see SPEC_FULL.md §6.6). The selection contract, alignment
// layout, and singular-point/tail-mask behavior are implemented faithfully;
// only the per-lane arithmetic itself is scalar-unrolled Go.
package simdkernel

import "golang.org/x/sys/cpu"

// Width names a selected kernel lane width.
type Width int

const (
	// Scalar disables vectorization entirely.
	Scalar Width = iota
	// Lanes4 is the 128-bit kernel: 4 float32 lanes x unroll factor 2.
	Lanes4
	// Lanes8 is the 256-bit kernel: 8 float32 lanes x unroll factor 2.
	Lanes8
)

func (w Width) String() string {
	switch w {
	case Lanes4:
		return "sse128"
	case Lanes8:
		return "avx256"
	default:
		return "scalar"
	}
}

// Config mirrors the USE_SSE/USE_AVX configuration knobs of spec §6.
type Config struct {
	UseSSE bool
	UseAVX bool
}

// Select picks the widest kernel permitted by cfg and actually supported by
// the running CPU, per spec §4.5's "picks the widest supported kernel at
// construction time based on runtime CPU feature detection" contract.
// Detection uses golang.org/x/sys/cpu, which compiles (as all-zero
// feature flags) on every architecture, so Select is safe to call
// unconditionally regardless of GOARCH.
func Select(cfg Config) Width {
	if cfg.UseAVX && cpu.X86.HasAVX2 {
		return Lanes8
	}
	if cfg.UseSSE && cpu.X86.HasSSE2 {
		return Lanes4
	}
	return Scalar
}

func laneCount(w Width) int {
	switch w {
	case Lanes4:
		return 4
	case Lanes8:
		return 8
	default:
		return 1
	}
}

func alignmentFor(w Width) int {
	switch w {
	case Lanes4:
		return 16
	case Lanes8:
		return 32
	default:
		return 4
	}
}
