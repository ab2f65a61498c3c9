// SPDX-License-Identifier: EPL-2.0

// Package device models an open audio output: a native pcm.Spec plus an
// ordered chain of effect functions run over every buffer before it would
// be handed to the hardware.
//
//	dev, err := device.New(pcm.Spec{Rate: 48000, Format: pcm.Signed16LSB(), Channels: 4})
//	fn, err := effect.Position(dev.Spec(), 90, 40)
//	h := dev.Attach(fn)
//	dev.Process(buf)
//	dev.Detach(h)
//
// Effects run in the order they were attached. Attach and Detach take a
// mutex; Process only takes it to copy the chain, so an effect is never
// run under the lock and a concurrent Detach does not disturb a Process in
// progress.
//
// Stream adapts a float audio.Source to the device: every chunk is packed
// into native bytes, processed and unpacked again. Handles are UUIDs and
// stay unique across devices.
package device
