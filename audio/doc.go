// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the codecs and backends
// are built on.
//
// # Source Interface
//
// Every decoder returns a Source: a pull based stream of interleaved float32
// samples in [-1.0, 1.0].
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is exhausted. It may return the
// last samples together with io.EOF.
//
// # Processing
//
// MonoMixer averages the channels of each frame. Resampler changes the
// sample rate with Catmull-Rom interpolation and a one-pole low-pass when
// the rate goes down. ReadAllMono16 chains both and collects 16-bit PCM:
//
//	pcm, err := audio.ReadAllMono16(ctx, src, 16000, 4096)
//
// # Registry
//
// Registry maps file extensions to decoders so a backend can pick one by
// path:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ext, ok := registry.ForPath("speech.wav")
//
// # Formats and Properties
//
// Format is the (codec, channels, sample rate) triple used to decide whether
// a file needs conversion, and Properties is what a prober reports.
// The sentinel errors ErrUnavailable, ErrUnsupported and ErrParseFailed are
// shared by every backend so callers can classify failures without knowing
// which backend ran.
package audio
