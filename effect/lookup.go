// SPDX-License-Identifier: EPL-2.0

package effect

import "sync"

// volumeTable maps [volume][sample] to the scaled sample. Rows are
// indexed by offset-binary sample values (0x80 is silence) for both
// signednesses.
type volumeTable [256][256]byte

// Runtime owns the 8-bit volume tables shared by every effect it builds.
// Tables are built on first use and never change afterwards, so effects
// read them without locking. The zero value is ready to use.
type Runtime struct {
	mu       sync.RWMutex
	unsigned *volumeTable
	signed   *volumeTable
}

// NewRuntime returns a Runtime with no tables built yet.
func NewRuntime() *Runtime {
	return &Runtime{}
}

var defaultRuntime = NewRuntime()

// DefaultRuntime returns the process wide Runtime used by the package
// level builders.
func DefaultRuntime() *Runtime { return defaultRuntime }

func (rt *Runtime) peek(signed bool) *volumeTable {
	if signed {
		return rt.signed
	}
	return rt.unsigned
}

func (rt *Runtime) table(signed bool) *volumeTable {
	rt.mu.RLock()
	t := rt.peek(signed)
	rt.mu.RUnlock()
	if t != nil {
		return t
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if t = rt.peek(signed); t != nil {
		return t
	}
	t = buildVolumeTable(signed)
	if signed {
		rt.signed = t
	} else {
		rt.unsigned = t
	}
	return t
}

// Built reports whether the table for the given signedness exists yet.
func (rt *Runtime) Built(signed bool) bool {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.peek(signed) != nil
}

// Lookup returns table[volume][sample], building the table if needed.
func (rt *Runtime) Lookup(signed bool, volume, sample uint8) byte {
	return rt.table(signed)[volume][sample]
}

// buildVolumeTable fills the table with (sample-128)*volume/255, truncated
// toward zero. The unsigned table adds the 128 bias back. The signed table
// keeps only the low byte of the scaled value.
func buildVolumeTable(signed bool) *volumeTable {
	t := new(volumeTable)
	for volume := range 256 {
		scale := float64(volume) / 255
		for sample := range 256 {
			centered := (float64(sample) - 128) * scale
			if signed {
				t[volume][sample] = byte(int8(centered))
			} else {
				t[volume][sample] = uint8(centered + 128)
			}
		}
	}
	return t
}

// gainMap composes the gain and distance lookups into one byte to byte
// map for a single channel. Input and output bytes are in the format's
// own encoding.
func (t *volumeTable) gainMap(signed bool, gain, distance Gain) [256]byte {
	var m [256]byte
	for b := range 256 {
		if signed {
			g := t[gain][byte(b)^0x80]
			m[b] = t[distance][g^0x80]
		} else {
			m[b] = t[distance][t[gain][b]]
		}
	}
	return m
}
