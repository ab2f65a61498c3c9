// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audpos/audio"
	"github.com/ik5/audpos/utils"
)

// Encoder writes interleaved float32 samples as integer PCM WAV.
type Encoder struct {
	enc      *wav.Encoder
	channels int
	bits     int
	buf      *goaudio.IntBuffer
	frames   int
	closed   bool
}

// NewEncoder starts a WAV stream on w. bits must be 8, 16, 24 or 32. The
// header is finalized by Close, so w must stay open until then.
func NewEncoder(w io.WriteSeeker, rate, channels, bits int) (*Encoder, error) {
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}
	if channels < 1 || rate < 1 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedWavLayout, channels, rate)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: bits,
	}

	return &Encoder{
		enc:      wav.NewEncoder(w, rate, bits, channels, formatPCM),
		channels: channels,
		bits:     bits,
		buf:      buf,
	}, nil
}

// Write appends samples. A trailing partial frame is dropped.
func (e *Encoder) Write(samples []float32) error {
	if e.closed {
		return ErrEncoderClosed
	}

	n := len(samples) - len(samples)%e.channels
	if n == 0 {
		return nil
	}
	if cap(e.buf.Data) < n {
		e.buf.Data = make([]int, n)
	}
	e.buf.Data = e.buf.Data[:n]

	for i, v := range samples[:n] {
		s := utils.FloatToInt(v, e.bits)
		if e.bits == 8 {
			s += 128
		}
		e.buf.Data[i] = s
	}

	if err := e.enc.Write(e.buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	e.frames += n / e.channels
	return nil
}

// Frames is the number of frames written so far.
func (e *Encoder) Frames() int { return e.frames }

// Close writes the final header sizes. It does not close the underlying
// writer.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}

// WriteAll drains src into a new WAV stream on w and returns the number
// of frames written.
func WriteAll(w io.WriteSeeker, src audio.Source, bits int) (int, error) {
	enc, err := NewEncoder(w, src.SampleRate(), src.Channels(), bits)
	if err != nil {
		return 0, err
	}

	buf := make([]float32, 1024*src.Channels())
	for {
		n, rerr := src.ReadSamples(buf)
		if err := enc.Write(buf[:n]); err != nil {
			return enc.Frames(), err
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return enc.Frames(), fmt.Errorf("wav: reading source: %w", rerr)
		}
	}

	if err := enc.Close(); err != nil {
		return enc.Frames(), err
	}
	return enc.Frames(), nil
}
