// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sources for tests. The types satisfy
// audio.Source without importing it.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrClosed is returned by ReadSamples after Close.
var ErrClosed = errors.New("audiotest: source closed")

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	closed     bool
	waveform   func(frame, channel int) float32
}

func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewChannelSource emits values[c] on channel c for every frame.
func NewChannelSource(sampleRate, frames int, values ...float32) *MockSource {
	return NewMockSource(sampleRate, len(values), frames, func(_, c int) float32 { return values[c] })
}

// NewRampSource emits frame/frames on every channel.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// SplitSource replays a drained MockSource at most step samples per read,
// so reads end in the middle of a frame.
type SplitSource struct {
	sampleRate int
	channels   int
	samples    []float32
	step       int
	closed     bool
}

func NewSplitSource(src *MockSource, step int) *SplitSource {
	var all []float32
	buf := make([]float32, 256*src.channels)
	for {
		n, err := src.ReadSamples(buf)
		all = append(all, buf[:n]...)
		if err != nil {
			break
		}
	}
	return &SplitSource{sampleRate: src.sampleRate, channels: src.channels, samples: all, step: step}
}

func (s *SplitSource) SampleRate() int { return s.sampleRate }
func (s *SplitSource) Channels() int   { return s.channels }

func (s *SplitSource) Close() error {
	s.closed = true
	return nil
}

func (s *SplitSource) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if len(s.samples) == 0 {
		return 0, io.EOF
	}

	n := copy(dst[:min(len(dst), s.step)], s.samples)
	s.samples = s.samples[n:]
	if len(s.samples) == 0 {
		return n, io.EOF
	}
	return n, nil
}
