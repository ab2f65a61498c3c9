// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"strconv"
	"strings"
)

// Format flag bits, laid out the way SDL packs them into the high byte of
// an audio format code.
const (
	flagFloat     = 0x01
	flagBigEndian = 0x10
	flagSigned    = 0x80
)

// SampleFormat describes how a single sample is stored in a device buffer.
type SampleFormat struct {
	Bits      int
	Signed    bool
	BigEndian bool
	Float     bool
}

func Unsigned8() SampleFormat     { return SampleFormat{Bits: 8} }
func Signed8() SampleFormat       { return SampleFormat{Bits: 8, Signed: true} }
func Unsigned16LSB() SampleFormat { return SampleFormat{Bits: 16} }
func Unsigned16MSB() SampleFormat { return SampleFormat{Bits: 16, BigEndian: true} }
func Signed16LSB() SampleFormat   { return SampleFormat{Bits: 16, Signed: true} }
func Signed16MSB() SampleFormat   { return SampleFormat{Bits: 16, Signed: true, BigEndian: true} }
func Signed32LSB() SampleFormat   { return SampleFormat{Bits: 32, Signed: true} }
func Signed32MSB() SampleFormat   { return SampleFormat{Bits: 32, Signed: true, BigEndian: true} }
func Float32LSB() SampleFormat    { return SampleFormat{Bits: 32, Signed: true, Float: true} }
func Float32MSB() SampleFormat    { return SampleFormat{Bits: 32, Signed: true, Float: true, BigEndian: true} }

// SupportedFormats lists every format CodecFor accepts, unsigned and
// narrow first.
func SupportedFormats() []SampleFormat {
	return []SampleFormat{
		Unsigned8(), Signed8(),
		Unsigned16LSB(), Unsigned16MSB(), Signed16LSB(), Signed16MSB(),
		Signed32LSB(), Signed32MSB(),
		Float32LSB(), Float32MSB(),
	}
}

// BytesPerSample returns the storage size of one sample.
func (f SampleFormat) BytesPerSample() int { return f.Bits / 8 }

// Code packs the format as flags<<8 | bits.
func (f SampleFormat) Code() uint16 {
	var flags uint16
	if f.Float {
		flags |= flagFloat
	}
	if f.BigEndian {
		flags |= flagBigEndian
	}
	if f.Signed {
		flags |= flagSigned
	}
	return flags<<8 | uint16(f.Bits&0xff)
}

// FormatFromCode is the inverse of Code.
func FormatFromCode(code uint16) SampleFormat {
	flags := code >> 8
	return SampleFormat{
		Bits:      int(code & 0xff),
		Signed:    flags&flagSigned != 0,
		BigEndian: flags&flagBigEndian != 0,
		Float:     flags&flagFloat != 0,
	}
}

// String returns the short name used on the command line, e.g. "s16le".
func (f SampleFormat) String() string {
	var b strings.Builder
	switch {
	case f.Float:
		b.WriteByte('f')
	case f.Signed:
		b.WriteByte('s')
	default:
		b.WriteByte('u')
	}
	fmt.Fprintf(&b, "%d", f.Bits)
	if f.Bits > 8 {
		if f.BigEndian {
			b.WriteString("be")
		} else {
			b.WriteString("le")
		}
	}
	return b.String()
}

// ParseSampleFormat parses names such as "u8", "s16le", "u16be", "s32le"
// or "f32be". An 8-bit name takes no endianness suffix; wider names
// without one default to little endian. A hex format code such as
// "0x8010" is accepted as well.
func ParseSampleFormat(name string) (SampleFormat, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(s, "0x") {
		return parseCode(name, s)
	}
	if len(s) < 2 {
		return SampleFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormatName, name)
	}

	var f SampleFormat
	switch s[0] {
	case 'u':
	case 's':
		f.Signed = true
	case 'f':
		f.Signed = true
		f.Float = true
	default:
		return SampleFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormatName, name)
	}
	s = s[1:]

	switch {
	case strings.HasSuffix(s, "be"):
		f.BigEndian = true
		s = strings.TrimSuffix(s, "be")
	case strings.HasSuffix(s, "le"):
		s = strings.TrimSuffix(s, "le")
	}

	switch s {
	case "8":
		f.Bits = 8
	case "16":
		f.Bits = 16
	case "32":
		f.Bits = 32
	default:
		return SampleFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormatName, name)
	}
	if f.Bits == 8 {
		f.BigEndian = false
	}

	return f, nil
}

func parseCode(name, s string) (SampleFormat, error) {
	code, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return SampleFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormatName, name)
	}
	f := FormatFromCode(uint16(code))
	if _, err := CodecFor(f); err != nil {
		return SampleFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormatName, name)
	}
	if f.Bits == 8 {
		f.BigEndian = false
	}
	return f, nil
}

// Spec is what an open device reports when queried.
type Spec struct {
	Rate     int
	Format   SampleFormat
	Channels int
}

// FrameSize is the number of bytes one frame occupies in a device buffer.
func (s Spec) FrameSize() int { return s.Channels * s.Format.BytesPerSample() }

func (s Spec) String() string {
	return fmt.Sprintf("%s %dch %dHz", s.Format, s.Channels, s.Rate)
}
