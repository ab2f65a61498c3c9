// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/ik5/audpos/effect"
	"github.com/ik5/audpos/pcm"
	"github.com/ik5/audpos/utils"
)

const (
	DefaultChunkFrames = 1024
	maxChannels        = 8
)

// Handle identifies an attached effect.
type Handle uuid.UUID

func (h Handle) String() string { return uuid.UUID(h).String() }

type attached struct {
	h  Handle
	fn effect.Func
}

// Device is an output with a fixed native Spec and an ordered effect
// chain. Attach, Detach and Process may be called from different
// goroutines.
type Device struct {
	spec  pcm.Spec
	codec pcm.Codec
	chunk int
	log   *slog.Logger

	mu      sync.Mutex
	effects []attached
}

type Option func(*Device)

// WithChunkFrames sets the number of frames handed to the chain per
// Process call when streaming.
func WithChunkFrames(n int) Option {
	return func(d *Device) {
		if n > 0 {
			d.chunk = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Device) {
		if l != nil {
			d.log = l
		}
	}
}

// New returns a Device for spec. The rate must be positive, the channel
// count between 1 and 8, and the format one pcm.CodecFor accepts.
func New(spec pcm.Spec, opts ...Option) (*Device, error) {
	if spec.Rate <= 0 {
		return nil, fmt.Errorf("%w: rate %d", ErrInvalidSpec, spec.Rate)
	}
	if spec.Channels < 1 || spec.Channels > maxChannels {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidSpec, spec.Channels)
	}
	codec, err := pcm.CodecFor(spec.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	d := &Device{
		spec:  spec,
		codec: codec,
		chunk: DefaultChunkFrames,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Device) Spec() pcm.Spec   { return d.spec }
func (d *Device) ChunkFrames() int { return d.chunk }
func (d *Device) ChunkBytes() int  { return d.chunk * d.spec.FrameSize() }

// Attach appends fn to the chain.
func (d *Device) Attach(fn effect.Func) Handle {
	h := Handle(uuid.New())

	d.mu.Lock()
	d.effects = append(d.effects, attached{h: h, fn: fn})
	n := len(d.effects)
	d.mu.Unlock()

	d.log.Debug("effect attached", slog.String("handle", h.String()), slog.Int("effects", n))
	return h
}

// Detach removes the effect registered under h and reports whether it was
// attached.
func (d *Device) Detach(h Handle) bool {
	d.mu.Lock()
	i := slices.IndexFunc(d.effects, func(a attached) bool { return a.h == h })
	if i < 0 {
		d.mu.Unlock()
		return false
	}
	// copy so a Process already running keeps its snapshot intact
	d.effects = slices.Delete(slices.Clone(d.effects), i, i+1)
	n := len(d.effects)
	d.mu.Unlock()

	d.log.Debug("effect detached", slog.String("handle", h.String()), slog.Int("effects", n))
	return true
}

// DetachAll clears the chain.
func (d *Device) DetachAll() {
	d.mu.Lock()
	n := len(d.effects)
	d.effects = nil
	d.mu.Unlock()

	d.log.Debug("all effects detached", slog.Int("removed", n))
}

// Len is the number of attached effects.
func (d *Device) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.effects)
}

// Process runs the chain over buf in attach order. The lock is held only
// long enough to take a snapshot of the chain.
func (d *Device) Process(buf []byte) {
	d.mu.Lock()
	chain := d.effects
	d.mu.Unlock()

	for _, a := range chain {
		a.fn(buf)
	}
}

// Pack encodes normalized samples from src into device native bytes and
// returns the number of samples written. Values are clamped to [-1, 1].
func (d *Device) Pack(dst []byte, src []float32) int {
	size := d.codec.Size()
	n := min(len(src), len(dst)/size)
	scale := d.codec.Scale()
	for i, v := range src[:n] {
		d.codec.Encode(dst[i*size:], float64(utils.ClampUnit(v))*scale)
	}
	return n
}

// Unpack decodes device native bytes into normalized samples and returns
// the number of samples read.
func (d *Device) Unpack(dst []float32, src []byte) int {
	size := d.codec.Size()
	n := min(len(dst), len(src)/size)
	scale := d.codec.Scale()
	for i := range n {
		dst[i] = float32(d.codec.Decode(src[i*size:]) / scale)
	}
	return n
}
