// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/ik5/audpos/audio"
)

// Stream is an audio.Source that passes src through a device's effect
// chain. Each read packs at most one chunk into native bytes, runs
// Process on it and unpacks the result, so the output carries the
// device's quantization. Samples after the last whole frame of a read are
// held back and lead the next one.
type Stream struct {
	dev  *Device
	src  audio.Source
	raw  []byte
	part []float32
}

// NewStream requires src to have the device's channel count. The sample
// rate is not checked.
func NewStream(dev *Device, src audio.Source) (*Stream, error) {
	if src.Channels() != dev.spec.Channels {
		return nil, fmt.Errorf("%w: source %d, device %d", ErrChannelMismatch, src.Channels(), dev.spec.Channels)
	}
	return &Stream{
		dev:  dev,
		src:  src,
		raw:  make([]byte, dev.ChunkBytes()),
		part: make([]float32, 0, dev.spec.Channels),
	}, nil
}

func (s *Stream) SampleRate() int { return s.src.SampleRate() }
func (s *Stream) Channels() int   { return s.dev.spec.Channels }

func (s *Stream) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *Stream) ReadSamples(dst []float32) (int, error) {
	ch := s.dev.spec.Channels
	frames := min(len(dst)/ch, s.dev.chunk)
	if frames == 0 {
		return 0, nil
	}

	k := copy(dst, s.part)
	n, err := s.src.ReadSamples(dst[k : frames*ch])
	n += k
	rem := n % ch
	s.part = append(s.part[:0], dst[n-rem:n]...)
	n -= rem

	raw := s.raw[:n*s.dev.codec.Size()]
	s.dev.Pack(raw, dst[:n])
	s.dev.Process(raw)
	s.dev.Unpack(dst[:n], raw)

	return n, err
}
