// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpos/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. The channel count is preserved. When downsampling each
// input frame first goes through a one-pole low-pass filter.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame
	channels int

	// hist holds frames t-1, t0, t+1 and t+2; real marks which of them
	// came from src rather than edge padding.
	hist   [4][]float32
	real   [4]bool
	pos    float64
	primed bool

	in      []float32
	off, n  int
	eof     bool
	smooth  bool
	seeded  bool
	lpState []float32
}

// NewResampler returns a Source producing src at dstRate.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSampleRate, src.SampleRate(), dstRate)
	}

	ch := src.Channels()
	r := &Resampler{
		src:      src,
		rate:     dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: ch,
		in:       make([]float32, 1024*ch),
		lpState:  make([]float32, ch),
	}
	r.smooth = r.step > 1
	for i := range r.hist {
		r.hist[i] = make([]float32, ch)
	}
	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// next copies the following source frame into frame. It reports false
// once src is drained.
func (r *Resampler) next(frame []float32) (bool, error) {
	for r.off >= r.n {
		if r.eof {
			return false, nil
		}
		n, err := r.src.ReadSamples(r.in)
		r.off, r.n = 0, n-n%r.channels
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(frame, r.in[r.off:r.off+r.channels])
	r.off += r.channels

	if r.smooth {
		if !r.seeded {
			copy(r.lpState, frame)
			r.seeded = true
		}
		for c, v := range frame {
			v = 0.5*v + 0.5*r.lpState[c]
			frame[c] = v
			r.lpState[c] = v
		}
	}
	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.next(r.hist[1])
	if err != nil || !ok {
		return err
	}
	copy(r.hist[0], r.hist[1])
	r.real[1] = true

	for i := 2; i < 4; i++ {
		ok, err := r.next(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.real[i] = ok
	}
	return nil
}

func (r *Resampler) shift() error {
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	ok, err := r.next(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.real[3] = ok
	return nil
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}
		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
