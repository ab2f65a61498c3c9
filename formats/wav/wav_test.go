// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/ik5/audpos/audio"
	"github.com/ik5/audpos/internal/audiotest"
)

// memFile is an in-memory io.WriteSeeker.
type memFile struct {
	data []byte
	pos  int
}

func (m *memFile) Write(p []byte) (int, error) {
	if end := m.pos + len(p); end > len(m.data) {
		m.data = append(m.data, make([]byte, end-len(m.data))...)
	}
	n := copy(m.data[m.pos:], p)
	m.pos += n
	return n, nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		m.pos = int(offset)
	case io.SeekCurrent:
		m.pos += int(offset)
	case io.SeekEnd:
		m.pos = len(m.data) + int(offset)
	}
	return int64(m.pos), nil
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 256*src.Channels())
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bits     int
		channels int
		tol      float64
	}{
		{name: "16-bit stereo", bits: 16, channels: 2, tol: 0},
		{name: "16-bit 5.1", bits: 16, channels: 6, tol: 0},
		{name: "8-bit mono", bits: 8, channels: 1, tol: 1.0 / 128},
		{name: "24-bit quad", bits: 24, channels: 4, tol: 1.0 / (1 << 23)},
		{name: "32-bit stereo", bits: 32, channels: 2, tol: 1e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// quantize to 16-bit steps so the 16-bit case is exact
			want := make([]float32, 1000*tt.channels)
			for i := range want {
				want[i] = float32(int16(i*37%65536-32768)) / 32768
			}

			f := &memFile{}
			enc, err := NewEncoder(f, 22050, tt.channels, tt.bits)
			if err != nil {
				t.Fatalf("NewEncoder() error = %v", err)
			}
			if err := enc.Write(want[:500*tt.channels]); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := enc.Write(want[500*tt.channels:]); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if enc.Frames() != 1000 {
				t.Errorf("Frames() = %d, want 1000", enc.Frames())
			}
			if err := enc.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			src, err := Decoder{}.Decode(bytes.NewReader(f.data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 22050 || src.Channels() != tt.channels {
				t.Fatalf("decoded %d Hz %d ch", src.SampleRate(), src.Channels())
			}

			got := readAll(t, src)
			if len(got) != len(want) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if d := math.Abs(float64(got[i] - want[i])); d > tt.tol {
					t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestDecoder_NotSeekable(t *testing.T) {
	t.Parallel()

	f := &memFile{}
	if _, err := WriteAll(f, audiotest.NewConstantSource(8000, 1, 100, 0.5), 16); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	// io.MultiReader hides Seek
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(f.data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got := readAll(t, src)
	if len(got) != 100 || got[99] != 0.5 {
		t.Errorf("decoded %d samples, last %v", len(got), got[len(got)-1])
	}
}

func TestDecoder_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "text", in: strings.Repeat("not a wave file ", 8)},
	}

	for _, tt := range tests {
		if _, err := (Decoder{}).Decode(strings.NewReader(tt.in)); !errors.Is(err, ErrNotWavFile) {
			t.Errorf("%s: Decode() error = %v, want ErrNotWavFile", tt.name, err)
		}
	}
}

func TestNewEncoder_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewEncoder(&memFile{}, 44100, 2, 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("12 bits error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := NewEncoder(&memFile{}, 44100, 0, 16); !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Errorf("0 channels error = %v, want ErrUnsupportedWavLayout", err)
	}
}

func TestEncoder_WriteAfterClose(t *testing.T) {
	t.Parallel()

	enc, err := NewEncoder(&memFile{}, 44100, 2, 16)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	if err := enc.Write([]float32{0, 0}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := enc.Write([]float32{0, 0}); !errors.Is(err, ErrEncoderClosed) {
		t.Errorf("Write() after Close error = %v, want ErrEncoderClosed", err)
	}
}

func TestEncoder_Clamps(t *testing.T) {
	t.Parallel()

	f := &memFile{}
	enc, err := NewEncoder(f, 8000, 1, 16)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	if err := enc.Write([]float32{2, -2, 1, -1}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data := f.data[len(f.data)-8:]
	want := []byte{0xff, 0x7f, 0x00, 0x80, 0xff, 0x7f, 0x00, 0x80}
	if !bytes.Equal(data, want) {
		t.Errorf("pcm = % x, want % x", data, want)
	}
}

func TestWriteAll(t *testing.T) {
	t.Parallel()

	f := &memFile{}
	n, err := WriteAll(f, audiotest.NewSineSource(44100, 2, 3000, 440), 16)
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if n != 3000 {
		t.Errorf("WriteAll() = %d frames, want 3000", n)
	}
	if !bytes.HasPrefix(f.data, []byte("RIFF")) || string(f.data[8:12]) != "WAVE" {
		t.Errorf("missing RIFF/WAVE header: % x", f.data[:12])
	}
}
