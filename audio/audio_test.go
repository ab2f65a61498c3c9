// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
)

type fakeDecoder struct{ name string }

func (fakeDecoder) Decode(io.Reader) (Source, error) { return nil, nil }

// readAll drains src in chunks of chunk frames.
func readAll(t *testing.T, src Source, chunk int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, chunk*src.Channels())
	for range 1 << 20 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", fakeDecoder{"wav"})
	reg.Register("MP3", fakeDecoder{"mp3"})
	reg.Register("ogg", fakeDecoder{"ogg"})

	if got, want := reg.Formats(), []string{"mp3", "ogg", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}

	d, ok := reg.Get("Mp3")
	if !ok || d.(fakeDecoder).name != "mp3" {
		t.Errorf("Get(Mp3) = %v, %v", d, ok)
	}

	if _, ok := reg.Get("flac"); ok {
		t.Error("Get(flac) found a decoder")
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", fakeDecoder{"wav"})

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "take.wav", want: "wav"},
		{path: "/tmp/dir.d/TAKE.WAV", want: "wav"},
		{path: "take.flac", wantErr: true},
		{path: "take", wantErr: true},
	}

	for _, tt := range tests {
		d, err := reg.ForPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ForPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForPath(%q) error = %v", tt.path, err)
			continue
		}
		if d.(fakeDecoder).name != tt.want {
			t.Errorf("ForPath(%q) = %v, want %s", tt.path, d, tt.want)
		}
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Register(string(rune('a'+i)), fakeDecoder{})
			reg.Get("a")
			reg.Formats()
		}()
	}
	wg.Wait()

	if got := len(reg.Formats()); got != 16 {
		t.Errorf("len(Formats()) = %d, want 16", got)
	}
}
