// SPDX-License-Identifier: EPL-2.0

// Package scene loads render scenes from YAML.
//
// A scene names the simulated output device, the bit depth of the
// rendered file and the effect chain:
//
//	device:
//	  format: s16le   # u8, s8, u16le/be, s16le/be, s32le/be, f32le/be
//	  channels: 4
//	  rate: 48000
//	  chunk: 1024     # frames per Process call
//	output:
//	  bits: 16
//	effects:
//	  - {type: position, angle: 90, distance: 40}
//	  - {type: distance, distance: 10}
//	  - {type: panning, left: 255, right: 120}
//	  - {type: stereo_reverse}
//
// Missing values fall back to a 44.1 kHz s16le stereo device with
// 1024-frame chunks and 16-bit output. Unknown keys and effect types are
// errors. Whether an effect supports the device layout is only known when
// Build runs.
package scene
