// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ik5/audiofile/audio"
)

// Converter transcodes any input ffmpeg understands into a PCM WAV file.
type Converter struct {
	bin    string
	logger *slog.Logger
}

// NewConverter uses the ffmpeg binary at bin, or "ffmpeg" from PATH when
// bin is empty. A nil logger discards output.
func NewConverter(bin string, logger *slog.Logger) *Converter {
	if bin == "" {
		bin = "ffmpeg"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Converter{bin: bin, logger: logger}
}

// Convert writes src to dst in the target format, overwriting dst. Only
// pcm_s16le targets are supported.
func (c *Converter) Convert(ctx context.Context, src, dst string, target audio.Format) error {
	args, err := convertArgs(src, dst, target)
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "running ffmpeg", "src", src, "dst", dst, "target", target.String())

	if _, err := run(ctx, c.bin, args...); err != nil {
		return fmt.Errorf("convert %s: %w", src, err)
	}

	return nil
}

func convertArgs(src, dst string, target audio.Format) ([]string, error) {
	if target.Codec != audio.CodecPCMS16LE {
		return nil, fmt.Errorf("%w: target codec %q", audio.ErrUnsupported, target.Codec)
	}
	if target.Channels <= 0 || target.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: target %s", audio.ErrUnsupported, target)
	}

	return []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", src,
		"-vn",
		"-ac", strconv.Itoa(target.Channels),
		"-ar", strconv.Itoa(target.SampleRate),
		"-acodec", target.Codec,
		"-map_metadata", "-1",
		"-flags", "+bitexact",
		"-f", "wav",
		dst,
	}, nil
}
