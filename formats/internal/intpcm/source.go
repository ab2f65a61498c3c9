// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio integer decoders to audio.Source.
package intpcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// Reader is the part of the go-audio wav and aiff decoders a Source uses.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM read from dec to float32 in [-1,1].
type Source struct {
	dec      Reader
	rate     int
	channels int
	scale    float32
	offset   int
	buf      *goaudio.IntBuffer
	done     bool
}

// NewSource wraps dec. unsigned8 marks 8-bit data stored as 0..255, as WAV
// does.
func NewSource(dec Reader, rate, channels, bitDepth int, unsigned8 bool) (*Source, error) {
	s := &Source{dec: dec, rate: rate, channels: channels}

	switch bitDepth {
	case 8:
		s.scale = 1 << 7
		if unsigned8 {
			s.offset = 128
		}
	case 16:
		s.scale = 1 << 15
	case 24:
		s.scale = 1 << 23
	case 32:
		s.scale = 1 << 31
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return s, nil
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{Data: make([]int, len(dst)), Format: s.dec.Format()}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-s.offset) / s.scale
	}

	if n < len(dst) || err != nil {
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}
	return n, nil
}

// ReadSeeker returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return bytes.NewReader(data), nil
}
