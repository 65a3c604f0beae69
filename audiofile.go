// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ik5/audiofile/audio"
	"github.com/ik5/audiofile/buffer"
	"github.com/ik5/audiofile/config"
	"github.com/ik5/audiofile/ffmpeg"
	"github.com/ik5/audiofile/formats/wav"
	"github.com/ik5/audiofile/native"
	"github.com/ik5/audiofile/tempfile"
)

// CodecPCM16 is the codec name recorded after samples are loaded.
const CodecPCM16 = "pcm16"

// State tells where the samples of an AudioFile live.
type State int

const (
	// StateUnpopulated has neither samples nor a source path.
	StateUnpopulated State = iota
	// StateSourceOnly has a source path but no samples in memory.
	StateSourceOnly
	// StateLoaded has samples in memory.
	StateLoaded
	// StateCleared had its samples released by ClearData. It loads again
	// from the source path when there is one.
	StateCleared
)

// String returns the lower case name of the state.
func (s State) String() string {
	switch s {
	case StateUnpopulated:
		return "unpopulated"
	case StateSourceOnly:
		return "source-only"
	case StateLoaded:
		return "loaded"
	case StateCleared:
		return "cleared"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// AudioFile is a mono sample buffer, optionally backed by a media file that
// is loaded on first use.
//
// An AudioFile is not safe for concurrent use.
type AudioFile struct {
	path string

	// source is what WithFormat declared about the file on disk. format is
	// what Format reports and becomes canonical once a conversion ran.
	source audio.Format
	format audio.Format

	fileSize   int64
	duration   time.Duration
	codecName  string
	sampleRate int
	channels   int

	buf     buffer.Buffer
	cleared bool

	cfg       config.Config
	cfgSet    bool
	logger    *slog.Logger
	prober    Prober
	converter Converter
	pcm       Codec
	temp      TempProvider
}

// Option configures an AudioFile in New.
type Option func(*AudioFile)

// WithFormat declares the format of the source file. Without it the file
// is always converted before loading.
func WithFormat(f audio.Format) Option {
	return func(a *AudioFile) {
		a.source = f
		a.format = f
	}
}

// WithConfig replaces config.Default().
func WithConfig(cfg config.Config) Option {
	return func(a *AudioFile) {
		a.cfg = cfg
		a.cfgSet = true
	}
}

// WithLogger sets the logger. Records carry the source path.
func WithLogger(l *slog.Logger) Option {
	return func(a *AudioFile) {
		a.logger = l
	}
}

// WithProber replaces the prober of the configured backend.
func WithProber(p Prober) Option {
	return func(a *AudioFile) {
		a.prober = p
	}
}

// WithConverter replaces the converter of the configured backend.
func WithConverter(c Converter) Option {
	return func(a *AudioFile) {
		a.converter = c
	}
}

// WithCodec replaces the WAV codec used to read converted files and to
// write output.
func WithCodec(c Codec) Option {
	return func(a *AudioFile) {
		a.pcm = c
	}
}

// WithTempProvider replaces the temporary files created under TmpPath.
func WithTempProvider(t TempProvider) Option {
	return func(a *AudioFile) {
		a.temp = t
	}
}

// New returns a handle for path, which may be empty for a buffer built in
// memory. Nothing is read until ReadProperties or a sample operation.
//
// Collaborators not given as options follow the configuration: the
// prober and converter come from the configured backend, temporary files
// go to TmpPath and PCM is read and written as WAV.
func New(path string, opts ...Option) *AudioFile {
	a := &AudioFile{path: path}

	for _, opt := range opts {
		opt(a)
	}

	if !a.cfgSet {
		a.cfg = config.Default()
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}

	switch a.cfg.Backend {
	case config.BackendNative:
		backend := native.New(nil, a.logger)
		if a.prober == nil {
			a.prober = backend
		}
		if a.converter == nil {
			a.converter = backend
		}
	default:
		if a.prober == nil {
			a.prober = ffmpeg.NewProber(a.cfg.FFprobePath, a.logger)
		}
		if a.converter == nil {
			a.converter = ffmpeg.NewConverter(a.cfg.FFmpegPath, a.logger)
		}
	}

	if a.pcm == nil {
		a.pcm = wav.Codec{}
	}
	if a.temp == nil {
		a.temp = tempfile.New(a.cfg.TmpPath)
	}

	a.logger = a.logger.With("path", path)

	return a
}

// Path is the source file, empty for a buffer built in memory.
func (a *AudioFile) Path() string { return a.path }

// Format is the format declared with WithFormat. Load sets it to the
// canonical format after converting.
func (a *AudioFile) Format() audio.Format { return a.format }

// FileSize in bytes, 0 until ReadProperties.
func (a *AudioFile) FileSize() int64 { return a.fileSize }

// Duration of the audio. It follows the buffer once samples are present,
// otherwise it is what ReadProperties reported.
func (a *AudioFile) Duration() time.Duration { return a.duration }

// Codec is "pcm16" after loading, or the codec ReadProperties reported.
func (a *AudioFile) Codec() string { return a.codecName }

// SampleRate in Hz, 0 while unknown. It is the load rate once samples are
// loaded.
func (a *AudioFile) SampleRate() int { return a.sampleRate }

// Channels of the source as probed, 1 once samples are loaded.
func (a *AudioFile) Channels() int { return a.channels }

// Len is the number of valid samples.
func (a *AudioFile) Len() int { return a.buf.Len() }

// Cap is the number of allocated sample slots.
func (a *AudioFile) Cap() int { return a.buf.Cap() }

// State is derived from the buffer, the source path and ClearData.
func (a *AudioFile) State() State {
	switch {
	case a.buf.Allocated():
		return StateLoaded
	case a.cleared:
		return StateCleared
	case a.path != "":
		return StateSourceOnly
	default:
		return StateUnpopulated
	}
}

// updateDuration keeps Duration in step with the buffer. It does nothing
// while the sample rate or the storage is missing.
func (a *AudioFile) updateDuration() {
	if a.sampleRate <= 0 || !a.buf.Allocated() {
		return
	}

	a.duration = time.Duration(int64(a.buf.Len()) * int64(time.Second) / int64(a.sampleRate))
}

// String is a multi-line summary of the metadata and buffer sizes.
func (a *AudioFile) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "path:        %s\n", a.path)
	fmt.Fprintf(&sb, "format:      %s\n", a.format)
	fmt.Fprintf(&sb, "size:        %d bytes\n", a.fileSize)
	fmt.Fprintf(&sb, "duration:    %.3fs\n", a.duration.Seconds())
	fmt.Fprintf(&sb, "codec:       %s\n", a.codecName)
	fmt.Fprintf(&sb, "sample rate: %d\n", a.sampleRate)
	fmt.Fprintf(&sb, "channels:    %d\n", a.channels)
	fmt.Fprintf(&sb, "capacity:    %d\n", a.buf.Cap())
	fmt.Fprintf(&sb, "length:      %d", a.buf.Len())

	return sb.String()
}
