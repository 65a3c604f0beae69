// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/ik5/audiofile/audio"
)

// Prober reads stream properties with ffprobe.
type Prober struct {
	bin    string
	logger *slog.Logger
}

// NewProber uses the ffprobe binary at bin, or "ffprobe" from PATH when bin
// is empty. A nil logger discards output.
func NewProber(bin string, logger *slog.Logger) *Prober {
	if bin == "" {
		bin = "ffprobe"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Prober{bin: bin, logger: logger}
}

// Probe reports the first audio stream of path.
func (p *Prober) Probe(ctx context.Context, path string) (audio.Properties, error) {
	p.logger.DebugContext(ctx, "running ffprobe", "path", path)

	out, err := run(ctx, p.bin,
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_name,sample_rate,channels,duration:format=duration",
		"-of", "json",
		path,
	)
	if err != nil {
		return audio.Properties{}, fmt.Errorf("probe %s: %w", path, err)
	}

	props, err := parseProbe(out)
	if err != nil {
		return audio.Properties{}, fmt.Errorf("probe %s: %w", path, err)
	}

	return props, nil
}

// ffprobe prints numbers as strings in its JSON output.
type probeOutput struct {
	Streams []struct {
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
		Duration   string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func parseProbe(data []byte) (audio.Properties, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return audio.Properties{}, fmt.Errorf("%w: %w", audio.ErrParseFailed, err)
	}
	if len(out.Streams) == 0 {
		return audio.Properties{}, fmt.Errorf("%w: no audio stream", audio.ErrParseFailed)
	}

	s := out.Streams[0]

	rate, err := strconv.Atoi(s.SampleRate)
	if err != nil || rate <= 0 {
		return audio.Properties{}, fmt.Errorf("%w: sample rate %q", audio.ErrParseFailed, s.SampleRate)
	}

	// stream duration is exact for most containers, the format one is an
	// estimate for some
	duration, ok := parseSeconds(s.Duration)
	if !ok {
		duration, _ = parseSeconds(out.Format.Duration)
	}

	return audio.Properties{
		Duration:   duration,
		Codec:      s.CodecName,
		SampleRate: rate,
		Channels:   s.Channels,
	}, nil
}

// parseSeconds handles ffprobe's decimal seconds and its "N/A".
func parseSeconds(s string) (time.Duration, bool) {
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil || sec < 0 || math.IsInf(sec, 0) || math.IsNaN(sec) {
		return 0, false
	}

	return time.Duration(math.Round(sec * float64(time.Second))), true
}
