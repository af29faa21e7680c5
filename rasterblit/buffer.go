package rasterblit

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrUnsupportedElemType indicates a Buffer was constructed with an
// ElemType outside the eleven recognized values.
var ErrUnsupportedElemType = errors.New("rasterblit: unsupported element type")

// Buffer is a caller-owned, row-major raster buffer of NX*NY elements of
// Elem type. The Tile Driver (spec §4.7) blits one completed row at a time
// into it; conversion is per-element with no range clamping, per spec
// §4.8 ("out-of-range behavior is whatever the source system's word-copy
// primitive does").
type Buffer struct {
	Bytes []byte
	NX    int
	NY    int
	Elem  ElemType
}

// NewBuffer allocates a zeroed Buffer of nx*ny elements.
func NewBuffer(nx, ny int, elem ElemType) (*Buffer, error) {
	if !elem.valid() {
		return nil, ErrUnsupportedElemType
	}
	return &Buffer{Bytes: make([]byte, nx*ny*elem.Size()), NX: nx, NY: ny, Elem: elem}, nil
}

// BlitRow converts row (exactly NX f64 values) and copies it into output
// row y. Safe to call concurrently for distinct y from distinct goroutines
// — each row occupies a disjoint byte range, per spec §5's "partitioned by
// stripe so workers never write to the same address".
func (b *Buffer) BlitRow(y int, row []float64) {
	stride := b.Elem.Size()
	offset := y * b.NX * stride
	dst := b.Bytes[offset : offset+b.NX*stride]

	switch b.Elem {
	case Byte:
		for i, v := range row {
			dst[i] = byte(v)
		}
	case Int16:
		for i, v := range row {
			binary.LittleEndian.PutUint16(dst[i*2:], uint16(int16(v)))
		}
	case UInt16:
		for i, v := range row {
			binary.LittleEndian.PutUint16(dst[i*2:], uint16(v))
		}
	case Int32:
		for i, v := range row {
			binary.LittleEndian.PutUint32(dst[i*4:], uint32(int32(v)))
		}
	case UInt32:
		for i, v := range row {
			binary.LittleEndian.PutUint32(dst[i*4:], uint32(v))
		}
	case Float32:
		for i, v := range row {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
		}
	case Float64:
		for i, v := range row {
			binary.LittleEndian.PutUint64(dst[i*8:], math.Float64bits(v))
		}
	case CInt16:
		for i, v := range row {
			o := i * 4
			binary.LittleEndian.PutUint16(dst[o:], uint16(int16(v)))
			binary.LittleEndian.PutUint16(dst[o+2:], 0)
		}
	case CInt32:
		for i, v := range row {
			o := i * 8
			binary.LittleEndian.PutUint32(dst[o:], uint32(int32(v)))
			binary.LittleEndian.PutUint32(dst[o+4:], 0)
		}
	case CFloat32:
		for i, v := range row {
			o := i * 8
			binary.LittleEndian.PutUint32(dst[o:], math.Float32bits(float32(v)))
			binary.LittleEndian.PutUint32(dst[o+4:], 0)
		}
	case CFloat64:
		for i, v := range row {
			o := i * 16
			binary.LittleEndian.PutUint64(dst[o:], math.Float64bits(v))
			binary.LittleEndian.PutUint64(dst[o+8:], 0)
		}
	}
}

// ReadFloat64 reads back buf's real-valued component at (i,j) as a
// float64, widening integer element types and narrowing f32/complex ones.
// Exists for tests and callers that want to inspect a blitted buffer
// without re-deriving the element-type switch themselves.
func ReadFloat64(buf *Buffer, i, j int) float64 {
	stride := buf.Elem.Size()
	offset := (j*buf.NX + i) * stride
	src := buf.Bytes[offset : offset+stride]

	switch buf.Elem {
	case Byte:
		return float64(src[0])
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(src)))
	case UInt16:
		return float64(binary.LittleEndian.Uint16(src))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(src)))
	case UInt32:
		return float64(binary.LittleEndian.Uint32(src))
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(src))
	case CInt16:
		return float64(int16(binary.LittleEndian.Uint16(src)))
	case CInt32:
		return float64(int32(binary.LittleEndian.Uint32(src)))
	case CFloat32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	case CFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(src))
	default:
		return 0
	}
}
