// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"fmt"

	"github.com/ik5/audpos/pcm"
)

// Func transforms one device buffer in place. It only touches complete
// frames and never fails once built.
type Func func(buf []byte)

// StereoReverse swaps the left and right channel of every frame. The
// device must be stereo.
func (rt *Runtime) StereoReverse(spec pcm.Spec) (Func, error) {
	if spec.Channels != 2 {
		return nil, fmt.Errorf("%w: stereo reverse on %d channels", ErrUnsupportedFeature, spec.Channels)
	}

	switch spec.Format.Bits {
	case 8, 16, 32:
	default:
		return nil, fmt.Errorf("%w: stereo reverse on %d-bit samples", ErrUnsupportedFeature, spec.Format.Bits)
	}

	half := spec.Format.BytesPerSample()
	frame := 2 * half

	return func(buf []byte) {
		for off := 0; off+frame <= len(buf); off += frame {
			l := buf[off : off+half]
			r := buf[off+half : off+frame]
			for i := range l {
				l[i], r[i] = r[i], l[i]
			}
		}
	}, nil
}

// Position places the sound at angle degrees (0 is in front, 90 to the
// right) and distance, 0 being closest and 255 out of hearing range.
// Angles outside [0,359] are clamped.
func (rt *Runtime) Position(spec pcm.Spec, angle int, distance uint8) (Func, error) {
	if _, err := layoutChannels(spec.Channels); err != nil {
		return nil, err
	}

	angle = clampAngle(angle)
	room := NewRoomAngle(spec.Channels, angle)

	return rt.selectFunc(spec, state{
		room:     room,
		gains:    Gains(spec.Channels, angle, room),
		distance: Gain(255 - distance),
	})
}

// Panning sets the left and right volume. Stereo devices apply the two
// values directly; quad and 5.1 devices convert them to a position.
func (rt *Runtime) Panning(spec pcm.Spec, left, right uint8) (Func, error) {
	switch spec.Channels {
	case 2:
		return rt.selectFunc(spec, state{
			room:     Room0,
			gains:    GainVector{Gain(left), Gain(right), 0, 0, 0, FullGain},
			distance: FullGain,
		})
	case 4, 6:
		return rt.Position(spec, panningAngle(left, right), 0)
	}

	return nil, fmt.Errorf("%w: panning on %d channels", ErrUnsupportedFeature, spec.Channels)
}

// Distance attenuates every channel equally, 0 being full volume and 255
// silence.
func (rt *Runtime) Distance(spec pcm.Spec, distance uint8) (Func, error) {
	return rt.selectFunc(spec, state{
		room:     Room0,
		gains:    FullGains(),
		distance: Gain(255 - distance),
	})
}

// StereoReverse builds a channel swap effect with the default Runtime.
func StereoReverse(spec pcm.Spec) (Func, error) {
	return defaultRuntime.StereoReverse(spec)
}

// Position builds a positional effect with the default Runtime.
func Position(spec pcm.Spec, angle int, distance uint8) (Func, error) {
	return defaultRuntime.Position(spec, angle, distance)
}

// Panning builds a left/right balance effect with the default Runtime.
func Panning(spec pcm.Spec, left, right uint8) (Func, error) {
	return defaultRuntime.Panning(spec, left, right)
}

// Distance builds a distance attenuation effect with the default Runtime.
func Distance(spec pcm.Spec, distance uint8) (Func, error) {
	return defaultRuntime.Distance(spec, distance)
}
