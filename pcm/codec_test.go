// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestCodecFor_Unsupported(t *testing.T) {
	t.Parallel()

	tests := []SampleFormat{
		{Bits: 24, Signed: true},
		{Bits: 64, Signed: true},
		{Bits: 0},
		{Bits: 16, Float: true},
		{Bits: 64, Float: true},
		{Bits: 8, Float: true},
	}

	for _, f := range tests {
		if _, err := CodecFor(f); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("CodecFor(%+v) error = %v, want ErrUnsupportedFormat", f, err)
		}
	}
}

func TestCodec_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format SampleFormat
		in     []byte
		want   float64
	}{
		{name: "u8 midpoint", format: Unsigned8(), in: []byte{0x80}, want: 0},
		{name: "u8 min", format: Unsigned8(), in: []byte{0x00}, want: -128},
		{name: "u8 max", format: Unsigned8(), in: []byte{0xff}, want: 127},
		{name: "s8 negative", format: Signed8(), in: []byte{0xff}, want: -1},
		{name: "u16le midpoint", format: Unsigned16LSB(), in: []byte{0x00, 0x80}, want: 0},
		{name: "u16be max", format: Unsigned16MSB(), in: []byte{0xff, 0xff}, want: 32767},
		{name: "s16le", format: Signed16LSB(), in: []byte{0x34, 0x12}, want: 0x1234},
		{name: "s16be", format: Signed16MSB(), in: []byte{0x12, 0x34}, want: 0x1234},
		{name: "s16le negative", format: Signed16LSB(), in: []byte{0x00, 0x80}, want: -32768},
		{name: "s32be", format: Signed32MSB(), in: []byte{0xff, 0xff, 0xff, 0xfe}, want: -2},
		{name: "s32le", format: Signed32LSB(), in: []byte{0x01, 0x00, 0x00, 0x00}, want: 1},
		{name: "u32 treated as signed", format: SampleFormat{Bits: 32}, in: []byte{0xff, 0xff, 0xff, 0xff}, want: -1},
		{name: "f32le", format: Float32LSB(), in: []byte{0x00, 0x00, 0x80, 0x3f}, want: 1},
		{name: "f32be", format: Float32MSB(), in: []byte{0xbf, 0x00, 0x00, 0x00}, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := CodecFor(tt.format)
			if err != nil {
				t.Fatalf("CodecFor() error = %v", err)
			}
			if c.Size() != len(tt.in) {
				t.Fatalf("Size() = %d, want %d", c.Size(), len(tt.in))
			}
			if got := c.Decode(tt.in); got != tt.want {
				t.Errorf("Decode(% x) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCodec_EncodeClampsAndTruncates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format SampleFormat
		in     float64
		want   []byte
	}{
		{name: "u8 over", format: Unsigned8(), in: 500, want: []byte{0xff}},
		{name: "u8 under", format: Unsigned8(), in: -500, want: []byte{0x00}},
		{name: "u8 truncates toward zero", format: Unsigned8(), in: -0.9, want: []byte{0x80}},
		{name: "s8 truncates", format: Signed8(), in: 3.7, want: []byte{0x03}},
		{name: "s16le over", format: Signed16LSB(), in: 40000, want: []byte{0xff, 0x7f}},
		{name: "s16be under", format: Signed16MSB(), in: -40000, want: []byte{0x80, 0x00}},
		{name: "u16le zero", format: Unsigned16LSB(), in: 0, want: []byte{0x00, 0x80}},
		{name: "s32le over", format: Signed32LSB(), in: 1e12, want: []byte{0xff, 0xff, 0xff, 0x7f}},
		{name: "f32 negative zero", format: Float32LSB(), in: math.Copysign(0, -1), want: []byte{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := CodecFor(tt.format)
			if err != nil {
				t.Fatalf("CodecFor() error = %v", err)
			}
			got := make([]byte, c.Size())
			c.Encode(got, tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%v) = % x, want % x", tt.in, got, tt.want)
			}
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range SupportedFormats() {
		if f.Float {
			continue
		}
		c, err := CodecFor(f)
		if err != nil {
			t.Fatalf("CodecFor(%s) error = %v", f, err)
		}

		buf := make([]byte, c.Size())
		out := make([]byte, c.Size())
		for i := range 4096 {
			for j := range buf {
				buf[j] = byte(i*31 + j*97)
			}
			c.Encode(out, c.Decode(buf))
			if !bytes.Equal(buf, out) {
				t.Fatalf("%s: round trip % x -> % x", f, buf, out)
			}
		}
	}
}

func TestCodec_Scale(t *testing.T) {
	t.Parallel()

	want := map[string]float64{"u8": 128, "s16le": 32768, "s32be": 2147483648, "f32le": 1}
	for name, scale := range want {
		f, err := ParseSampleFormat(name)
		if err != nil {
			t.Fatalf("ParseSampleFormat(%q) error = %v", name, err)
		}
		c, err := CodecFor(f)
		if err != nil {
			t.Fatalf("CodecFor(%s) error = %v", f, err)
		}
		if c.Scale() != scale {
			t.Errorf("%s Scale() = %v, want %v", name, c.Scale(), scale)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	t.Parallel()

	for _, f := range SupportedFormats() {
		if _, err := CodecFor(f); err != nil {
			t.Errorf("CodecFor(%s) error = %v", f, err)
		}
		if got, err := ParseSampleFormat(f.String()); err != nil || got != f {
			t.Errorf("ParseSampleFormat(%q) = %+v, %v", f.String(), got, err)
		}
	}
}
