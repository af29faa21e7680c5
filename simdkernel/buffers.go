package simdkernel

import (
	"unsafe"

	"github.com/fieldgrid/scattergrid/pointset"
)

// AlignedBuffer wraps a backing []float32 allocation whose logical data
// starts at the requested byte alignment, per spec §9's "newtype wrapping
// an allocation whose start is rounded up to the required alignment"
// design note.
type AlignedBuffer struct {
	backing []float32
	data    []float32
}

const float32Size = 4

func newAlignedBuffer(n, alignBytes int) AlignedBuffer {
	slack := alignBytes / float32Size
	backing := make([]float32, n+slack)
	if len(backing) == 0 {
		return AlignedBuffer{backing: backing, data: backing}
	}

	ptr := uintptr(unsafe.Pointer(&backing[0]))
	offset := 0
	if rem := ptr % uintptr(alignBytes); rem != 0 {
		offset = int((uintptr(alignBytes) - rem) / float32Size)
	}
	return AlignedBuffer{backing: backing, data: backing[offset : offset+n]}
}

// Floats returns the logical, aligned, padded float32 view.
func (b AlignedBuffer) Floats() []float32 { return b.data }

// Buffers holds the three aligned f32 copies (X, Y, Z) of a point set's
// coordinates and values, truncated from float64, for the SIMD invdistnn
// kernels. N is the logical (unpadded) point count; the backing arrays are
// padded up to a whole multiple of the kernel's lane width with a copy of
// the last real point (spec §9: "harmless... the singular-point rule would
// flag any accidental use").
type Buffers struct {
	N     int
	Width Width
	X, Y, Z AlignedBuffer
}

// Build allocates and fills aligned f32 buffers for pts at the given lane
// width. Width == Scalar still returns a usable (4-byte aligned, unpadded)
// Buffers so callers can use one code path regardless of selection.
//
// Complexity: O(N).
func Build(pts *pointset.Set, width Width) *Buffers {
	n := pts.Len()
	lanes := laneCount(width)
	padded := n
	if lanes > 1 && n%lanes != 0 {
		padded = n + (lanes - n%lanes)
	}

	align := alignmentFor(width)
	bx := newAlignedBuffer(padded, align)
	by := newAlignedBuffer(padded, align)
	bz := newAlignedBuffer(padded, align)

	for i := 0; i < n; i++ {
		bx.data[i] = float32(pts.X[i])
		by.data[i] = float32(pts.Y[i])
		bz.data[i] = float32(pts.Z[i])
	}
	if n > 0 {
		for i := n; i < padded; i++ {
			bx.data[i] = bx.data[n-1]
			by.data[i] = by.data[n-1]
			bz.data[i] = bz.data[n-1]
		}
	}

	return &Buffers{N: n, Width: width, X: bx, Y: by, Z: bz}
}
