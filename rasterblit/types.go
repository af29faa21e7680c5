// Package rasterblit implements the output blit of spec §4.8: converting a
// row of f64 cell values into a caller-owned raster buffer of one of eleven
// element types, including four complex variants whose imaginary part is
// always written as zero.
package rasterblit

import "fmt"

// ElemType names a raster buffer element type. The set and naming mirrors
// the real-plus-complex raster data type families common to scattered-data
// gridding backends (spec §4.8).
type ElemType int

const (
	Byte ElemType = iota
	Int16
	UInt16
	Int32
	UInt32
	Float32
	Float64
	CInt16
	CInt32
	CFloat32
	CFloat64
)

// Size returns the element's width in bytes.
func (e ElemType) Size() int {
	switch e {
	case Byte:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32, Float32:
		return 4
	case Float64:
		return 8
	case CInt16:
		return 4
	case CInt32, CFloat32:
		return 8
	case CFloat64:
		return 16
	default:
		return 0
	}
}

func (e ElemType) String() string {
	switch e {
	case Byte:
		return "u8"
	case Int16:
		return "i16"
	case UInt16:
		return "u16"
	case Int32:
		return "i32"
	case UInt32:
		return "u32"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case CInt16:
		return "ci16"
	case CInt32:
		return "ci32"
	case CFloat32:
		return "cf32"
	case CFloat64:
		return "cf64"
	default:
		return fmt.Sprintf("elemtype(%d)", int(e))
	}
}

func (e ElemType) valid() bool {
	return e >= Byte && e <= CFloat64
}
