// SPDX-License-Identifier: EPL-2.0

// Package pcm describes how device native audio is stored in memory and
// converts single samples between those encodings and float64.
//
// A SampleFormat is the bit width, signedness, byte order and int/float
// flag of one sample. A Spec adds the channel count and sample rate a
// device reports once it is open. Codecs decode and encode one sample at
// a time:
//
//	c, err := pcm.CodecFor(pcm.Signed16MSB())
//	v := c.Decode(buf[0:])    // -32768 .. 32767
//	c.Encode(buf[0:], v*0.5)  // half volume
//
// Formats round trip through the packed SDL style code returned by
// SampleFormat.Code and through the short names used on the command line
// ("u8", "s16le", "f32be", ...).
package pcm
