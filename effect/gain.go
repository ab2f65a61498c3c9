// SPDX-License-Identifier: EPL-2.0

package effect

// Gain is a speaker amplitude stored as a byte, 255 being unity.
type Gain uint8

const FullGain Gain = 255

// Float returns the gain normalized to [0,1].
func (g Gain) Float() float64 { return float64(g) / 255 }

// Speaker slots of a GainVector.
const (
	FrontLeft = iota
	FrontRight
	RearLeft
	RearRight
	Center
	Subwoofer
)

// GainVector holds one gain per speaker slot.
type GainVector [6]Gain

// FullGains returns a vector with every slot at unity.
func FullGains() GainVector {
	return GainVector{FullGain, FullGain, FullGain, FullGain, FullGain, FullGain}
}

// Floats returns the vector normalized to [0,1].
func (v GainVector) Floats() [6]float64 {
	var out [6]float64
	for i, g := range v {
		out[i] = g.Float()
	}
	return out
}

// ampByte truncates toward zero and saturates into the byte range.
func ampByte(x float64) Gain {
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return Gain(x)
}

func backAmp(angle int) Gain { return ampByte(255 * float64(angle) / 89) }
func sideAmp(angle int) Gain { return ampByte(255 * float64(angle) / 179) }

// Gains computes the speaker gains for a source at angle degrees, 0 being
// straight ahead and angles growing clockwise, then remaps the four
// corner slots so that they line up with the rotation applied for room.
// Mono has no direction and keeps every slot at unity. For stereo the
// rear and center slots are zero; the subwoofer slot is always at unity.
func Gains(channels, angle int, room RoomAngle) GainVector {
	if channels == 1 {
		return FullGains()
	}

	left, right := FullGain, FullGain
	leftRear, rightRear := FullGain, FullGain
	center := FullGain

	switch channels {
	case 2:
		switch {
		case angle < 90:
			left = 255 - backAmp(angle)
		case angle < 180:
			left = backAmp(angle - 90)
		case angle < 270:
			right = 255 - backAmp(angle-180)
		default:
			right = backAmp(angle - 270)
		}
	case 4, 6:
		switch {
		case angle < 45:
			left = sideAmp(180 - angle)
			leftRear = 255 - backAmp(angle+45)
			rightRear = 255 - sideAmp(90-angle)
		case angle < 90:
			center = sideAmp(225 - angle)
			left = sideAmp(180 - angle)
			leftRear = 255 - backAmp(135-angle)
			rightRear = sideAmp(90 + angle)
		case angle < 135:
			center = sideAmp(225 - angle)
			left = 255 - backAmp(angle-45)
			right = sideAmp(270 - angle)
			leftRear = sideAmp(angle)
		case angle < 180:
			center = 255 - backAmp(angle-90)
			left = 255 - backAmp(225-angle)
			right = sideAmp(270 - angle)
			leftRear = sideAmp(angle)
		case angle < 225:
			center = 255 - backAmp(270-angle)
			left = sideAmp(angle - 90)
			right = 255 - backAmp(angle-135)
			rightRear = sideAmp(360 - angle)
		case angle < 270:
			center = sideAmp(angle - 135)
			left = sideAmp(angle - 90)
			right = 255 - backAmp(315-angle)
			rightRear = sideAmp(360 - angle)
		case angle < 315:
			center = sideAmp(angle - 135)
			right = sideAmp(angle - 180)
			leftRear = sideAmp(450 - angle)
			rightRear = 255 - backAmp(angle-225)
		default:
			right = sideAmp(angle - 180)
			leftRear = sideAmp(450 - angle)
			rightRear = 255 - backAmp(45-angle)
		}
	}

	var amps [4]Gain
	switch room {
	case Room90:
		amps = [4]Gain{leftRear, left, rightRear, right}
	case Room180:
		if channels == 2 {
			amps = [4]Gain{right, left, 0, 0}
		} else {
			amps = [4]Gain{rightRear, leftRear, right, left}
		}
	case Room270:
		amps = [4]Gain{right, rightRear, left, leftRear}
	default:
		amps = [4]Gain{left, right, leftRear, rightRear}
	}

	if channels == 2 {
		amps[RearLeft], amps[RearRight] = 0, 0
		center = 0
	}

	return GainVector{amps[0], amps[1], amps[2], amps[3], center, FullGain}
}

// panningAngle converts a left/right balance into the angle a surround
// layout would use for it. Unity on both sides means straight ahead.
func panningAngle(left, right uint8) int {
	if left == 255 && right == 255 {
		return 0
	}
	return -((127 - int(left)) * 90 / 128)
}

func clampAngle(angle int) int {
	return min(max(angle, 0), 359)
}
