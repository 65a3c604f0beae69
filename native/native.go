// SPDX-License-Identifier: EPL-2.0

package native

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/audiofile/audio"
	"github.com/ik5/audiofile/formats/wav"
)

// Backend decodes files with the decoders of a registry. It implements
// both the converter and the prober side.
type Backend struct {
	registry *audio.Registry
	logger   *slog.Logger
}

// New uses registry, or NewRegistry() when it is nil. A nil logger discards
// output.
func New(registry *audio.Registry, logger *slog.Logger) *Backend {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Backend{registry: registry, logger: logger}
}

// open picks the decoder for path and starts decoding. The returned file
// must be closed by the caller.
func (b *Backend) open(path string) (*os.File, audio.Source, string, error) {
	dec, ext, ok := b.registry.ForPath(path)
	if !ok {
		return nil, nil, "", fmt.Errorf("%w: no decoder for %q", audio.ErrUnsupported, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: %w", audio.ErrUnsupported, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, "", unsupported(err)
	}

	return f, src, ext, nil
}

// Convert decodes src and writes it to dst as a WAV file in the target
// format. Only mono pcm_s16le targets are supported.
func (b *Backend) Convert(ctx context.Context, src, dst string, target audio.Format) error {
	if target.Codec != audio.CodecPCMS16LE || target.Channels != 1 || target.SampleRate <= 0 {
		return fmt.Errorf("%w: target %s", audio.ErrUnsupported, target)
	}

	f, source, ext, err := b.open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	b.logger.DebugContext(ctx, "native convert",
		"src", src,
		"decoder", ext,
		"rate", source.SampleRate(),
		"channels", source.Channels(),
		"target", target.String())

	pcm, err := audio.ReadAllMono16(ctx, source, target.SampleRate, source.BufSize())
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("convert %s: %w", src, err)
		}
		return unsupported(err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if err := wav.WriteWAV16(out, target.SampleRate, pcm); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}

	return out.Close()
}

// Probe decodes path to the end to count its frames.
func (b *Backend) Probe(ctx context.Context, path string) (audio.Properties, error) {
	f, source, ext, err := b.open(path)
	if err != nil {
		return audio.Properties{}, err
	}
	defer f.Close()
	defer source.Close()

	frames, err := audio.CountFrames(ctx, source, source.BufSize())
	if err != nil {
		if ctx.Err() != nil {
			return audio.Properties{}, fmt.Errorf("probe %s: %w", path, err)
		}
		return audio.Properties{}, fmt.Errorf("%w: %w", audio.ErrParseFailed, err)
	}

	rate := source.SampleRate()
	if rate <= 0 {
		return audio.Properties{}, fmt.Errorf("%w: sample rate %d", audio.ErrParseFailed, rate)
	}

	return audio.Properties{
		Duration:   time.Duration(int64(frames) * int64(time.Second) / int64(rate)),
		Codec:      codecName(source, ext),
		SampleRate: rate,
		Channels:   source.Channels(),
	}, nil
}

func unsupported(err error) error {
	if errors.Is(err, audio.ErrUnsupported) {
		return err
	}
	return fmt.Errorf("%w: %w", audio.ErrUnsupported, err)
}
