// SPDX-License-Identifier: EPL-2.0

package audpos

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audpos/audio"
	"github.com/ik5/audpos/device"
	"github.com/ik5/audpos/effect"
	"github.com/ik5/audpos/formats/wav"
	"github.com/ik5/audpos/scene"
)

type renderConfig struct {
	rt  *effect.Runtime
	log *slog.Logger
	reg *audio.Registry
}

type RenderOption func(*renderConfig)

// WithRuntime builds the effects against rt instead of the package
// default runtime.
func WithRuntime(rt *effect.Runtime) RenderOption {
	return func(c *renderConfig) { c.rt = rt }
}

func WithLogger(l *slog.Logger) RenderOption {
	return func(c *renderConfig) { c.log = l }
}

// WithRegistry sets the decoders RenderFile chooses from.
func WithRegistry(reg *audio.Registry) RenderOption {
	return func(c *renderConfig) { c.reg = reg }
}

func newRenderConfig(opts []RenderOption) renderConfig {
	c := renderConfig{rt: effect.DefaultRuntime()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	if c.reg == nil {
		c.reg = NewRegistry()
	}
	return c
}

// Render plays src through the device and effect chain sc describes and
// writes the result to dst as WAV. The source is resampled to the device
// rate and mapped to the device channel layout first. A nil scene is the
// default scene. Render returns the number of frames written and does not
// close src.
func Render(src audio.Source, dst io.WriteSeeker, sc *scene.Scene, opts ...RenderOption) (int, error) {
	cfg := newRenderConfig(opts)
	if sc == nil {
		sc = scene.Default()
	}
	if err := sc.Validate(); err != nil {
		return 0, err
	}
	spec, err := sc.Spec()
	if err != nil {
		return 0, err
	}

	var stage audio.Source = src
	if src.SampleRate() != spec.Rate {
		cfg.log.Debug("resampling", slog.Int("from", src.SampleRate()), slog.Int("to", spec.Rate))
		if stage, err = audio.NewResampler(stage, spec.Rate); err != nil {
			return 0, fmt.Errorf("render: %w", err)
		}
	}
	if stage, err = audio.NewChannelMapper(stage, spec.Channels); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}

	dev, err := device.New(spec,
		device.WithChunkFrames(sc.Device.Chunk),
		device.WithLogger(cfg.log),
	)
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	if _, err := sc.Apply(cfg.rt, dev); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}

	stream, err := device.NewStream(dev, stage)
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}

	cfg.log.Debug("rendering",
		slog.String("device", spec.String()),
		slog.Int("effects", dev.Len()),
		slog.Int("bits", sc.Output.Bits),
	)
	frames, err := wav.WriteAll(dst, stream, sc.Output.Bits)
	if err != nil {
		return frames, fmt.Errorf("render: %w", err)
	}
	cfg.log.Debug("render finished", slog.Int("frames", frames))
	return frames, nil
}

// RenderFile decodes in, picking the decoder by extension, and renders it
// to a new WAV file at out.
func RenderFile(in, out string, sc *scene.Scene, opts ...RenderOption) (frames int, err error) {
	cfg := newRenderConfig(opts)

	dec, err := cfg.reg.ForPath(in)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(in)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", in, err)
	}
	defer src.Close()

	w, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close output: %w", cerr))
		}
	}()

	return Render(src, w, sc, opts...)
}
