// SPDX-License-Identifier: EPL-2.0

// Package effect computes speaker gains from a position and applies them
// to interleaved PCM buffers in place.
//
// Every builder queries nothing by itself: the caller passes the pcm.Spec
// of the open device and gets back a Func bound to one immutable
// configuration. Changing a position means building a new Func and
// registering it instead of the old one.
//
// # Builders
//
//	spec := pcm.Spec{Rate: 48000, Format: pcm.Signed16LSB(), Channels: 4}
//
//	fn, err := effect.Position(spec, 90, 40) // right side, a bit away
//	if err != nil {
//	    // errors.Is(err, effect.ErrUnsupportedFeature)
//	}
//	fn(buf) // once per mixing chunk
//
// The four builders are:
//   - StereoReverse: swap left and right on stereo devices
//   - Position: angle (0 front, clockwise) and distance (0 near, 255 silent)
//   - Panning: explicit left/right volume; surround layouts convert it to an angle
//   - Distance: uniform attenuation
//
// # Supported Formats
//
// 32-bit float, 8-bit signed/unsigned, 16-bit signed/unsigned in either
// byte order and 32-bit integers in either byte order, on 1, 2, 4 or 6
// channels. Mono buffers are processed as stereo frames. Anything else
// returns ErrUnsupportedFeature from the builder; a built Func never fails.
//
// # Room Angle
//
// Positions are first snapped to a quadrant (RoomAngle). The gains are
// computed for the front facing case and a fixed per layout permutation
// rotates the speakers afterwards, so that a source behind the listener
// is played from the rear pair.
//
// # 8-bit Formats
//
// 8-bit samples are scaled through 256x256 volume tables instead of float
// math. The tables belong to a Runtime, are built on first use and shared
// read only by every effect afterwards. Use NewRuntime for an isolated set
// of tables, or the package level builders for the process wide one.
//
// # Real Time Use
//
// A Func does not allocate, lock or block, and leaves trailing bytes that
// do not make up a whole frame untouched.
package effect
