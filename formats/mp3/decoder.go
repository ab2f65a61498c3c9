// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audpos/audio"
	"github.com/ik5/audpos/pcm"
)

// go-mp3 always produces 16-bit little endian stereo.
const (
	outChannels = 2
	frameBytes  = outChannels * 2
)

type source struct {
	r     io.Reader
	rate  int
	codec pcm.Codec
	buf   []byte
	done  bool
}

func newSource(r io.Reader, rate int) *source {
	// s16le is always available
	codec, _ := pcm.CodecFor(pcm.Signed16LSB())
	return &source{r: r, rate: rate, codec: codec}
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return outChannels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	frames := len(dst) / outChannels
	if frames == 0 {
		return 0, nil
	}

	need := frames * frameBytes
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
	case err != nil:
		return 0, fmt.Errorf("mp3: %w", err)
	}

	samples := n / frameBytes * outChannels
	scale := s.codec.Scale()
	for i := range samples {
		dst[i] = float32(s.codec.Decode(s.buf[2*i:]) / scale)
	}

	if s.done {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder reads MPEG-1/2 layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return newSource(dec, dec.SampleRate()), nil
}
