// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ik5/audpos/device"
	"github.com/ik5/audpos/effect"
	"github.com/ik5/audpos/pcm"
)

// Effect types accepted in a scene file.
const (
	TypePosition      = "position"
	TypeDistance      = "distance"
	TypePanning       = "panning"
	TypeStereoReverse = "stereo_reverse"
)

const (
	DefaultFormat   = "s16le"
	DefaultChannels = 2
	DefaultRate     = 44100
	DefaultChunk    = device.DefaultChunkFrames
	DefaultBits     = 16
)

// Device is the simulated output the effects are built for.
type Device struct {
	Format   string `yaml:"format"`
	Channels int    `yaml:"channels"`
	Rate     int    `yaml:"rate"`
	Chunk    int    `yaml:"chunk"`
}

// Output controls the rendered WAV file.
type Output struct {
	Bits int `yaml:"bits"`
}

// Effect is one entry of the chain. Which fields matter depends on Type;
// Left and Right default to full volume when omitted.
type Effect struct {
	Type     string `yaml:"type"`
	Angle    int    `yaml:"angle,omitempty"`
	Distance int    `yaml:"distance,omitempty"`
	Left     *int   `yaml:"left,omitempty"`
	Right    *int   `yaml:"right,omitempty"`
}

type Scene struct {
	Device  Device   `yaml:"device"`
	Output  Output   `yaml:"output"`
	Effects []Effect `yaml:"effects"`
}

// Default returns a scene with no effects on a 44.1 kHz s16le stereo
// device.
func Default() *Scene {
	sc := &Scene{}
	sc.applyDefaults()
	return sc
}

func (s *Scene) applyDefaults() {
	if s.Device.Format == "" {
		s.Device.Format = DefaultFormat
	}
	if s.Device.Channels == 0 {
		s.Device.Channels = DefaultChannels
	}
	if s.Device.Rate == 0 {
		s.Device.Rate = DefaultRate
	}
	if s.Device.Chunk == 0 {
		s.Device.Chunk = DefaultChunk
	}
	if s.Output.Bits == 0 {
		s.Output.Bits = DefaultBits
	}
}

// Load parses a YAML scene, fills in defaults and validates it. Unknown
// keys are rejected. An empty document yields the default scene.
func Load(r io.Reader) (*Scene, error) {
	sc := &Scene{}
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	sc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Marshal renders the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScene, fmt.Sprintf(format, args...))
}

// Validate checks the device, the output and every effect's parameters.
// It does not check whether an effect supports the device layout; Build
// reports that.
func (s *Scene) Validate() error {
	if _, err := s.Spec(); err != nil {
		return err
	}
	if s.Device.Chunk < 1 {
		return invalid("chunk %d", s.Device.Chunk)
	}
	switch s.Output.Bits {
	case 8, 16, 24, 32:
	default:
		return invalid("output bits %d", s.Output.Bits)
	}

	for i, e := range s.Effects {
		if err := e.validate(); err != nil {
			return fmt.Errorf("effect %d: %w", i, err)
		}
	}
	return nil
}

func (e Effect) validate() error {
	byteRange := func(name string, v int) error {
		if v < 0 || v > 255 {
			return invalid("%s %d out of range 0..255", name, v)
		}
		return nil
	}

	switch e.Type {
	case TypePosition:
		return byteRange("distance", e.Distance)
	case TypeDistance:
		return byteRange("distance", e.Distance)
	case TypePanning:
		if err := byteRange("left", e.left()); err != nil {
			return err
		}
		return byteRange("right", e.right())
	case TypeStereoReverse:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownEffect, e.Type)
}

func (e Effect) left() int {
	if e.Left == nil {
		return 255
	}
	return *e.Left
}

func (e Effect) right() int {
	if e.Right == nil {
		return 255
	}
	return *e.Right
}

// Spec is the device spec the scene describes.
func (s *Scene) Spec() (pcm.Spec, error) {
	f, err := pcm.ParseSampleFormat(s.Device.Format)
	if err != nil {
		return pcm.Spec{}, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if s.Device.Rate < 1 {
		return pcm.Spec{}, invalid("rate %d", s.Device.Rate)
	}
	if s.Device.Channels < 1 {
		return pcm.Spec{}, invalid("channels %d", s.Device.Channels)
	}
	return pcm.Spec{Rate: s.Device.Rate, Format: f, Channels: s.Device.Channels}, nil
}

// Build creates the effect functions for spec in scene order.
func (s *Scene) Build(rt *effect.Runtime, spec pcm.Spec) ([]effect.Func, error) {
	fns := make([]effect.Func, 0, len(s.Effects))
	for i, e := range s.Effects {
		fn, err := e.build(rt, spec)
		if err != nil {
			return nil, fmt.Errorf("effect %d (%s): %w", i, e.Type, err)
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func (e Effect) build(rt *effect.Runtime, spec pcm.Spec) (effect.Func, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	switch e.Type {
	case TypePosition:
		return rt.Position(spec, e.Angle, uint8(e.Distance))
	case TypeDistance:
		return rt.Distance(spec, uint8(e.Distance))
	case TypePanning:
		return rt.Panning(spec, uint8(e.left()), uint8(e.right()))
	default:
		return rt.StereoReverse(spec)
	}
}

// Apply builds the chain for dev and attaches it. Nothing is attached if
// any effect fails to build.
func (s *Scene) Apply(rt *effect.Runtime, dev *device.Device) ([]device.Handle, error) {
	fns, err := s.Build(rt, dev.Spec())
	if err != nil {
		return nil, err
	}

	hs := make([]device.Handle, len(fns))
	for i, fn := range fns {
		hs[i] = dev.Attach(fn)
	}
	return hs, nil
}
