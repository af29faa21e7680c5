package rasterblit_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/fieldgrid/scattergrid/rasterblit"
	"github.com/stretchr/testify/require"
)

func TestNewBufferRejectsUnsupportedElemType(t *testing.T) {
	_, err := rasterblit.NewBuffer(1, 1, rasterblit.ElemType(999))
	require.ErrorIs(t, err, rasterblit.ErrUnsupportedElemType)
}

func TestBlitRowFloat64RoundTrips(t *testing.T) {
	buf, err := rasterblit.NewBuffer(3, 2, rasterblit.Float64)
	require.NoError(t, err)
	buf.BlitRow(1, []float64{1.5, -2.5, 3.0})

	offset := 1 * 3 * 8
	got := math.Float64frombits(binary.LittleEndian.Uint64(buf.Bytes[offset:]))
	require.Equal(t, 1.5, got)
	got = math.Float64frombits(binary.LittleEndian.Uint64(buf.Bytes[offset+8:]))
	require.Equal(t, -2.5, got)
}

func TestBlitRowFloat32Truncates(t *testing.T) {
	buf, err := rasterblit.NewBuffer(1, 1, rasterblit.Float32)
	require.NoError(t, err)
	buf.BlitRow(0, []float64{7})
	got := math.Float32frombits(binary.LittleEndian.Uint32(buf.Bytes))
	require.Equal(t, float32(7), got)
}

func TestBlitRowComplexWritesZeroImaginary(t *testing.T) {
	buf, err := rasterblit.NewBuffer(1, 1, rasterblit.CFloat64)
	require.NoError(t, err)
	buf.BlitRow(0, []float64{42})
	real := math.Float64frombits(binary.LittleEndian.Uint64(buf.Bytes[0:]))
	imag := math.Float64frombits(binary.LittleEndian.Uint64(buf.Bytes[8:]))
	require.Equal(t, 42.0, real)
	require.Equal(t, 0.0, imag)
}

func TestBlitRowByteAndUint16(t *testing.T) {
	buf, err := rasterblit.NewBuffer(2, 1, rasterblit.Byte)
	require.NoError(t, err)
	buf.BlitRow(0, []float64{200, 10})
	require.Equal(t, byte(200), buf.Bytes[0])
	require.Equal(t, byte(10), buf.Bytes[1])

	buf16, err := rasterblit.NewBuffer(2, 1, rasterblit.UInt16)
	require.NoError(t, err)
	buf16.BlitRow(0, []float64{65000, 1})
	require.Equal(t, uint16(65000), binary.LittleEndian.Uint16(buf16.Bytes[0:]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(buf16.Bytes[2:]))
}

func TestElemTypeSizeAndString(t *testing.T) {
	require.Equal(t, 1, rasterblit.Byte.Size())
	require.Equal(t, 16, rasterblit.CFloat64.Size())
	require.Equal(t, "f64", rasterblit.Float64.String())
	require.Equal(t, "cf32", rasterblit.CFloat32.String())
}
