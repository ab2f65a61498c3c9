// SPDX-License-Identifier: EPL-2.0

package effect

// RoomAngle is the quadrant a listener faces after quantizing a position
// angle. It selects the fixed channel permutation applied to each frame.
type RoomAngle int

const (
	Room0   RoomAngle = 0
	Room90  RoomAngle = 90
	Room180 RoomAngle = 180
	Room270 RoomAngle = 270
)

// NewRoomAngle quantizes angle for the given channel count. Stereo only
// distinguishes the front from the mirrored back half; quad and 5.1 snap
// to the nearest quadrant. Mono never rotates.
func NewRoomAngle(channels, angle int) RoomAngle {
	switch channels {
	case 2:
		if angle > 180 {
			return Room180
		}
		return Room0
	case 4, 6:
		switch {
		case angle > 315:
			return Room0
		case angle > 225:
			return Room270
		case angle > 135:
			return Room180
		case angle > 45:
			return Room90
		}
	}
	return Room0
}
