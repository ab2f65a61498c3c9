// SPDX-License-Identifier: EPL-2.0

// Package audio holds the float stream primitives the render pipeline is
// built from.
//
// # Source Interface
//
// Every decoder and stage implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1, 1]. ReadSamples returns a count
// of values, not frames, and io.EOF once the stream is drained. Stages
// wrap a Source and close it when they are closed.
//
// # Resampling
//
// Resampler changes the sample rate with cubic interpolation:
//
//	r, err := audio.NewResampler(src, 48000)
//
// # Channel Layouts
//
// ChannelMapper turns any input into one of the layouts the effect engine
// understands, 1, 2, 4 or 6 channels:
//
//	quad, err := audio.NewChannelMapper(src, 4)
//
// Mono is copied to every full range channel and stereo is copied to the
// rear pair. For 5.1 the center channel is the average of left and right
// and the LFE channel is silent.
//
// # Format Registry
//
// Registry keys decoders by format name and resolves file paths by
// extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("take1.WAV")
//
// # Reading A Stream
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
