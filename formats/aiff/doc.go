// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files using github.com/go-audio/aiff.
//
// 8, 16, 24 and 32-bit integer PCM is accepted with any channel count.
// Samples are returned as interleaved float32 in [-1, 1]:
//
//	f, _ := os.Open("loop.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//
// Inputs that cannot seek are read into memory first.
package aiff
