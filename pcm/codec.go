// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Codec converts one stored sample to and from float64.
//
// Integer codecs work in the sample's own numeric range, centered on zero:
// unsigned formats subtract their midpoint on decode and add it back on
// encode. Encode clamps to the representable range and truncates toward
// zero. The float codec passes values through unchanged.
type Codec interface {
	// Size is the number of bytes one sample occupies.
	Size() int
	// Decode reads a sample from the first Size() bytes of b.
	Decode(b []byte) float64
	// Encode writes v into the first Size() bytes of b.
	Encode(b []byte, v float64)
	// Scale is the magnitude that maps to 1.0 in normalized float audio.
	Scale() float64
}

// CodecFor returns the codec for f. It accepts 32-bit float, 8-bit signed
// and unsigned, 16-bit signed and unsigned in either byte order, and 32-bit
// integers in either byte order. Signedness is not distinguished at 32 bits.
func CodecFor(f SampleFormat) (Codec, error) {
	order := byteOrder(f.BigEndian)

	if f.Float {
		if f.Bits != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedFormat, f.Bits)
		}
		return float32Codec{order: order}, nil
	}

	switch f.Bits {
	case 8:
		if f.Signed {
			return int8Codec{}, nil
		}
		return uint8Codec{}, nil
	case 16:
		if f.Signed {
			return int16Codec{order: order}, nil
		}
		return uint16Codec{order: order}, nil
	case 32:
		return int32Codec{order: order}, nil
	}

	return nil, fmt.Errorf("%w: %d-bit integer", ErrUnsupportedFormat, f.Bits)
}

func byteOrder(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func clampTrunc(v, lo, hi float64) int64 {
	if v < lo {
		v = lo
	} else if v > hi {
		v = hi
	}
	return int64(v)
}

type uint8Codec struct{}

func (uint8Codec) Size() int               { return 1 }
func (uint8Codec) Scale() float64          { return 128 }
func (uint8Codec) Decode(b []byte) float64 { return float64(b[0]) - 128 }
func (uint8Codec) Encode(b []byte, v float64) {
	b[0] = uint8(clampTrunc(v, -128, 127) + 128)
}

type int8Codec struct{}

func (int8Codec) Size() int               { return 1 }
func (int8Codec) Scale() float64          { return 128 }
func (int8Codec) Decode(b []byte) float64 { return float64(int8(b[0])) }
func (int8Codec) Encode(b []byte, v float64) {
	b[0] = byte(int8(clampTrunc(v, math.MinInt8, math.MaxInt8)))
}

type uint16Codec struct{ order binary.ByteOrder }

func (uint16Codec) Size() int      { return 2 }
func (uint16Codec) Scale() float64 { return 32768 }
func (c uint16Codec) Decode(b []byte) float64 {
	return float64(c.order.Uint16(b)) - 32768
}
func (c uint16Codec) Encode(b []byte, v float64) {
	c.order.PutUint16(b, uint16(clampTrunc(v, math.MinInt16, math.MaxInt16)+32768))
}

type int16Codec struct{ order binary.ByteOrder }

func (int16Codec) Size() int      { return 2 }
func (int16Codec) Scale() float64 { return 32768 }
func (c int16Codec) Decode(b []byte) float64 {
	return float64(int16(c.order.Uint16(b)))
}
func (c int16Codec) Encode(b []byte, v float64) {
	c.order.PutUint16(b, uint16(int16(clampTrunc(v, math.MinInt16, math.MaxInt16))))
}

type int32Codec struct{ order binary.ByteOrder }

func (int32Codec) Size() int      { return 4 }
func (int32Codec) Scale() float64 { return 2147483648 }
func (c int32Codec) Decode(b []byte) float64 {
	return float64(int32(c.order.Uint32(b)))
}
func (c int32Codec) Encode(b []byte, v float64) {
	c.order.PutUint32(b, uint32(int32(clampTrunc(v, math.MinInt32, math.MaxInt32))))
}

type float32Codec struct{ order binary.ByteOrder }

func (float32Codec) Size() int      { return 4 }
func (float32Codec) Scale() float64 { return 1 }
func (c float32Codec) Decode(b []byte) float64 {
	return float64(math.Float32frombits(c.order.Uint32(b)))
}
func (c float32Codec) Encode(b []byte, v float64) {
	if v == 0 {
		v = 0 // no negative zero
	}
	c.order.PutUint32(b, math.Float32bits(float32(v)))
}
