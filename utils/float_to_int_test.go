// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClampUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{-1, -1},
		{1.5, 1},
		{-7, -1},
		{float32(math.Inf(1)), 1},
	}

	for _, tt := range tests {
		if got := ClampUnit(tt.in); got != tt.want {
			t.Errorf("ClampUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloatToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		bits int
		want int
	}{
		{name: "zero", in: 0, bits: 16, want: 0},
		{name: "16-bit max", in: 1, bits: 16, want: math.MaxInt16},
		{name: "16-bit min", in: -1, bits: 16, want: math.MinInt16},
		{name: "16-bit half", in: 0.5, bits: 16, want: 16384},
		{name: "16-bit truncates", in: -0.00002, bits: 16, want: 0},
		{name: "16-bit clamps", in: 1.5, bits: 16, want: math.MaxInt16},
		{name: "8-bit min", in: -1, bits: 8, want: -128},
		{name: "8-bit max", in: 1, bits: 8, want: 127},
		{name: "24-bit half", in: -0.5, bits: 24, want: -1 << 22},
		{name: "32-bit max", in: 1, bits: 32, want: math.MaxInt32},
		{name: "32-bit min", in: -2, bits: 32, want: math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToInt(tt.in, tt.bits); got != tt.want {
				t.Errorf("FloatToInt(%v, %d) = %d, want %d", tt.in, tt.bits, got, tt.want)
			}
		})
	}
}

func TestFloatToInt_RoundTrip16(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		x := float32(v) / 32768
		if got := FloatToInt(x, 16); got != v {
			t.Fatalf("FloatToInt(%d/32768) = %d", v, got)
		}
	}
}

func BenchmarkFloatToInt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		_ = FloatToInt(float32(i%2000-1000)/1000, 16)
	}
}
