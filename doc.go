// SPDX-License-Identifier: EPL-2.0

// Package audpos renders audio files through a positional effect chain.
//
// The effect engine itself lives in the effect package: it builds
// functions that apply per-speaker gains, a distance attenuation and a
// room rotation to raw interleaved PCM in the native format of an output
// device. This package wires it to file decoders and a WAV encoder so the
// result can be listened to without an audio device.
//
// # Quick Start
//
//	sc, _ := scene.LoadFile("scene.yaml")
//	frames, err := audpos.RenderFile("in.mp3", "out.wav", sc)
//
// # Pipeline
//
// Render builds the following chain:
//
//	decoder -> audio.Resampler -> audio.ChannelMapper -> device.Stream -> wav.Encoder
//
// The resampler is skipped when the source already runs at the device
// rate. The channel mapper produces the 1, 2, 4 or 6 channel layout the
// device declares. device.Stream packs every chunk into the device's
// sample format, runs the attached effects on the bytes and unpacks the
// result, so the rendered file carries the same quantization a real
// device would receive.
//
// # Supported Inputs
//
//   - WAV, 8/16/24/32-bit integer PCM, via formats/wav
//   - AIFF, 8/16/24/32-bit integer PCM, via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// NewRegistry returns all of them keyed by file extension.
//
// # Device Formats
//
// A scene's device may use u8, s8, u16le, u16be, s16le, s16be, s32le,
// s32be, f32le or f32be samples. 8-bit devices go through the precomputed
// volume tables of an effect.Runtime; WithRuntime selects which one.
package audpos
