// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float32 samples, so they are passed
// through unchanged. Reads are trimmed to whole frames; the remainder of a
// split frame is kept for the next call.
//
//	f, _ := os.Open("ambience.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
