// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Slot order of the 4 and 6 channel layouts produced by ChannelMapper.
const (
	slotFrontLeft = iota
	slotFrontRight
	slotRearLeft
	slotRearRight
	slotCenter
	slotLFE
)

// ChannelMapper converts a Source to a mono, stereo, quad or 5.1 layout.
//
// Frames are laid out front left, front right, rear left, rear right,
// center, LFE. Mono input feeds every full range slot. Stereo input feeds
// the fronts and the rears, with the center taking the average. The LFE
// slot is always silent. Any other input count is downmixed to mono first,
// and a mono target is always the average of the input. A read that ends
// inside an input frame keeps the partial frame for the next read.
type ChannelMapper struct {
	src  Source
	out  int
	tmp  []float32
	part []float32
}

// NewChannelMapper returns a Source with channels channels. Only 1, 2, 4
// and 6 are valid targets.
func NewChannelMapper(src Source, channels int) (*ChannelMapper, error) {
	switch channels {
	case 1, 2, 4, 6:
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, channels)
	}
	if src.Channels() < 1 {
		return nil, fmt.Errorf("%w: source has %d channels", ErrUnsupportedLayout, src.Channels())
	}

	return &ChannelMapper{src: src, out: channels, part: make([]float32, 0, src.Channels())}, nil
}

func (m *ChannelMapper) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMapper) Channels() int   { return m.out }

func (m *ChannelMapper) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelMapper) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.out != 0 {
		return 0, ErrInvalidDstSize
	}
	in := m.src.Channels()
	if in == m.out {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.out
	if frames == 0 {
		return 0, nil
	}
	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	k := copy(m.tmp, m.part)
	n, err := m.src.ReadSamples(m.tmp[k:])
	n += k
	got := n / in
	m.part = append(m.part[:0], m.tmp[got*in:n]...)
	for f := range got {
		m.mapFrame(dst[f*m.out:(f+1)*m.out], m.tmp[f*in:(f+1)*in])
	}

	return got * m.out, err
}

func (m *ChannelMapper) mapFrame(dst, src []float32) {
	var one [1]float32
	if m.out == 1 || (len(src) != 1 && len(src) != 2) {
		var sum float32
		for _, v := range src {
			sum += v
		}
		mono := sum / float32(len(src))
		if m.out == 1 {
			dst[0] = mono
			return
		}
		one[0] = mono
		src = one[:]
	}

	if len(src) == 1 {
		for i := range dst {
			dst[i] = src[0]
		}
		if m.out == 6 {
			dst[slotLFE] = 0
		}
		return
	}

	left, right := src[0], src[1]
	dst[slotFrontLeft], dst[slotFrontRight] = left, right
	if m.out == 2 {
		return
	}
	dst[slotRearLeft], dst[slotRearRight] = left, right
	if m.out == 6 {
		dst[slotCenter] = (left + right) / 2
		dst[slotLFE] = 0
	}
}
