// SPDX-License-Identifier: EPL-2.0

package effect

import "testing"

func TestNewRoomAngle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		angle    int
		want     RoomAngle
	}{
		{name: "stereo front", channels: 2, angle: 0, want: Room0},
		{name: "stereo right side", channels: 2, angle: 90, want: Room0},
		{name: "stereo exactly behind", channels: 2, angle: 180, want: Room0},
		{name: "stereo left rear", channels: 2, angle: 181, want: Room180},
		{name: "stereo last degree", channels: 2, angle: 359, want: Room180},
		{name: "mono behind", channels: 1, angle: 200, want: Room0},
		{name: "mono last degree", channels: 1, angle: 359, want: Room0},
		{name: "quad front", channels: 4, angle: 45, want: Room0},
		{name: "quad right", channels: 4, angle: 46, want: Room90},
		{name: "quad right edge", channels: 4, angle: 135, want: Room90},
		{name: "quad back", channels: 4, angle: 136, want: Room180},
		{name: "quad back edge", channels: 4, angle: 225, want: Room180},
		{name: "quad left", channels: 4, angle: 226, want: Room270},
		{name: "quad left edge", channels: 4, angle: 315, want: Room270},
		{name: "quad wraps to front", channels: 4, angle: 316, want: Room0},
		{name: "5.1 back", channels: 6, angle: 180, want: Room180},
		{name: "unsupported layout", channels: 3, angle: 200, want: Room0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewRoomAngle(tt.channels, tt.angle); got != tt.want {
				t.Errorf("NewRoomAngle(%d, %d) = %d, want %d", tt.channels, tt.angle, got, tt.want)
			}
		})
	}
}

func TestNewRoomAngle_AlwaysQuadrant(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{2, 4, 6} {
		for angle := range 360 {
			got := NewRoomAngle(channels, angle)
			switch got {
			case Room0, Room90, Room180, Room270:
			default:
				t.Fatalf("NewRoomAngle(%d, %d) = %d, not a quadrant", channels, angle, got)
			}
			if again := NewRoomAngle(channels, angle); again != got {
				t.Fatalf("NewRoomAngle(%d, %d) not stable: %d then %d", channels, angle, got, again)
			}
		}
	}
}
