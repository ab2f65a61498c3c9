// SPDX-License-Identifier: EPL-2.0

package utils

// ClampUnit limits x to [-1, 1].
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// FloatToInt scales a normalized sample to a signed integer of the given
// bit depth. Full scale is 1<<(bits-1), so -1 maps to the minimum value,
// +1 saturates at the maximum, and the fraction is truncated.
func FloatToInt(x float32, bits int) int {
	full := int64(1) << (bits - 1)
	v := int64(float64(ClampUnit(x)) * float64(full))
	if v > full-1 {
		v = full - 1
	}
	return int(v)
}
