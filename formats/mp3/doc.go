// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always renders 16-bit stereo, so every Source returned here has two
// channels regardless of the file. Mono files come out with both channels
// equal:
//
//	f, _ := os.Open("narration.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//
// A trailing partial frame in the decoded PCM is dropped.
package mp3
