// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audpos/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
	// pending holds the head of a frame split across two reads.
	pending []float32
	tmp     []float32
	eof     bool
}

func newSource(dec oggReader) *source {
	return &source{dec: dec, channels: dec.Channels()}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadSamples always returns whole frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	n := copy(dst[:want], s.pending)
	s.pending = s.pending[n:]

	if cap(s.tmp) < want {
		s.tmp = make([]float32, want)
	}
	for n < want && !s.eof {
		m, err := s.dec.Read(s.tmp[:want-n])
		n += copy(dst[n:want], s.tmp[:m])
		if errors.Is(err, io.EOF) {
			s.eof = true
		} else if err != nil {
			return n - n%s.channels, fmt.Errorf("vorbis: %w", err)
		}
		if m == 0 && !s.eof {
			break
		}
	}

	if rem := n % s.channels; rem != 0 {
		n -= rem
		if !s.eof {
			s.pending = append(s.pending[:0], dst[n:n+rem]...)
		}
	}

	if s.eof && len(s.pending) == 0 {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	if dec.Channels() < 1 {
		return nil, fmt.Errorf("vorbis: stream has %d channels", dec.Channels())
	}
	return newSource(dec), nil
}
