// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts 8, 16, 24 and 32-bit integer PCM with any channel count
// and sample rate. 8-bit WAV data is unsigned and is re-centered on zero.
// Samples come back as interleaved float32 in [-1, 1]:
//
//	f, _ := os.Open("voice.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Inputs that cannot seek are buffered in memory first.
//
// # Encoding
//
// Encoder converts float32 samples back to integer PCM at the requested
// bit depth, clamping to [-1, 1] and truncating toward zero:
//
//	enc, err := wav.NewEncoder(out, 48000, 6, 16)
//	err = enc.Write(samples)
//	err = enc.Close()
//
// The RIFF sizes are patched in by Close, so the writer has to be an
// io.WriteSeeker. WriteAll drains a whole audio.Source in one call.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream.
//   - ErrUnsupportedWavLayout: compressed or float data, or a broken header.
//   - ErrUnsupportedBitDepth: a bit depth other than 8, 16, 24 or 32.
package wav
