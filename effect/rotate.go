// SPDX-License-Identifier: EPL-2.0

package effect

// rotate permutes the gained speaker values of one frame so that the
// front of the mix faces room. These are fixed swap sequences per layout,
// not a rotation matrix. On 5.1 the center slot is first rebuilt from the
// two speakers that end up in front.
func rotate(channels int, room RoomAngle, v []float64) {
	switch channels {
	case 2:
		if room == Room180 {
			v[0], v[1] = v[1], v[0]
		}
	case 4:
		rotateQuad(room, v)
	case 6:
		switch room {
		case Room90:
			v[4] = (v[1] + v[3]) / 2
		case Room180:
			v[4] = (v[2] + v[3]) / 2
		case Room270:
			v[4] = (v[0] + v[2]) / 2
		}
		rotateQuad(room, v)
	}
}

func rotateQuad(room RoomAngle, v []float64) {
	switch room {
	case Room90:
		v[0], v[1] = v[1], v[0]
		v[1], v[3] = v[3], v[1]
		v[2], v[3] = v[3], v[2]
	case Room180:
		v[0], v[3] = v[3], v[0]
		v[1], v[2] = v[2], v[1]
	case Room270:
		v[0], v[1] = v[1], v[0]
		v[2], v[3] = v[3], v[2]
		v[0], v[3] = v[3], v[0]
	}
}
