// SPDX-License-Identifier: EPL-2.0

package effect

import (
	"fmt"

	"github.com/ik5/audpos/pcm"
)

// state is everything a position style effect needs while running. It is
// copied into the closure once and never written again.
type state struct {
	room     RoomAngle
	gains    GainVector
	distance Gain
}

// transcoder processes whole frames of one sample format and layout.
type transcoder struct {
	codec    pcm.Codec
	size     int
	channels int
	room     RoomAngle
	gains    [6]float64
	distance float64

	// lookup path, 8-bit formats only
	maps *[6][256]byte
}

func (tc transcoder) frameSize() int { return tc.size * tc.channels }

// process decodes, gains, rotates and re-encodes every complete frame of
// buf. Bytes after the last complete frame are left alone.
func (tc transcoder) process(buf []byte) {
	var gained [6]float64
	v := gained[:tc.channels]
	fs := tc.frameSize()

	for off := 0; off+fs <= len(buf); off += fs {
		frame := buf[off : off+fs]
		for c := range v {
			s := tc.codec.Decode(frame[c*tc.size:])
			s *= tc.gains[c]
			s *= tc.distance
			v[c] = s
		}
		rotate(tc.channels, tc.room, v)
		for c := range v {
			tc.codec.Encode(frame[c*tc.size:], v[c])
		}
	}
}

// process8 runs every byte through its channel's precomposed gain map and
// only goes through float when the frame has to be rotated.
func (tc transcoder) process8(buf []byte) {
	var gained [6]float64
	v := gained[:tc.channels]
	fs := tc.channels

	for off := 0; off+fs <= len(buf); off += fs {
		frame := buf[off : off+fs]
		for c := range frame {
			frame[c] = tc.maps[c][frame[c]]
		}
		if tc.room == Room0 {
			continue
		}
		for c := range v {
			v[c] = tc.codec.Decode(frame[c:])
		}
		rotate(tc.channels, tc.room, v)
		for c := range v {
			tc.codec.Encode(frame[c:], v[c])
		}
	}
}

// layoutChannels maps the device channel count to the layout the
// transcoders work in. Mono is processed as stereo.
func layoutChannels(channels int) (int, error) {
	switch channels {
	case 1:
		return 2, nil
	case 2, 4, 6:
		return channels, nil
	}
	return 0, fmt.Errorf("%w: %d channels", ErrUnsupportedFeature, channels)
}

// selectFunc picks the routine for spec and binds st to it. The format
// axis is resolved by pcm.CodecFor, the layout axis by layoutChannels and
// 8-bit formats always take the lookup path.
func (rt *Runtime) selectFunc(spec pcm.Spec, st state) (Func, error) {
	channels, err := layoutChannels(spec.Channels)
	if err != nil {
		return nil, err
	}

	codec, err := pcm.CodecFor(spec.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFeature, err)
	}

	tc := transcoder{
		codec:    codec,
		size:     codec.Size(),
		channels: channels,
		room:     st.room,
		gains:    st.gains.Floats(),
		distance: st.distance.Float(),
	}

	if tc.size == 1 {
		signed := spec.Format.Signed
		table := rt.table(signed)
		maps := new([6][256]byte)
		for c := range channels {
			maps[c] = table.gainMap(signed, st.gains[c], st.distance)
		}
		tc.maps = maps
		return tc.process8, nil
	}

	return tc.process, nil
}
