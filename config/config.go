// SPDX-License-Identifier: EPL-2.0

// Package config holds the process-wide settings of the audiofile module.
//
// Values come from AUDIOFILE_* environment variables through go-envconfig
// and are checked with validator before use.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	DefaultSampleRate = 16000
	BackendFFmpeg     = "ffmpeg"
	BackendNative     = "native"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the runtime settings shared by every AudioFile.
type Config struct {
	// SampleRate of the canonical format samples are loaded at.
	SampleRate int `env:"AUDIOFILE_SAMPLE_RATE, default=16000" validate:"gt=0,lte=768000" json:"sample_rate"`

	// SafetyChecks makes Load reconvert files whose declared format is not
	// exactly canonical. With it off, any declared format is trusted.
	SafetyChecks bool `env:"AUDIOFILE_SAFETY_CHECKS, default=true" json:"safety_checks"`

	// TmpPath is where conversion artifacts go. Empty means os.TempDir.
	TmpPath string `env:"AUDIOFILE_TMP_PATH" json:"tmp_path"`

	Backend     string `env:"AUDIOFILE_BACKEND, default=ffmpeg" validate:"oneof=ffmpeg native" json:"backend"`
	FFmpegPath  string `env:"AUDIOFILE_FFMPEG_PATH, default=ffmpeg" validate:"required_if=Backend ffmpeg" json:"ffmpeg_path"`
	FFprobePath string `env:"AUDIOFILE_FFPROBE_PATH, default=ffprobe" validate:"required_if=Backend ffmpeg" json:"ffprobe_path"`

	LogFormat string `env:"AUDIOFILE_LOG_FORMAT, default=text" validate:"oneof=text json" json:"log_format"`
	LogLevel  string `env:"AUDIOFILE_LOG_LEVEL, default=info" validate:"oneof=debug info warn warning error" json:"log_level"`
}

// Default returns the settings used when the environment is empty.
func Default() Config {
	return Config{
		SampleRate:   DefaultSampleRate,
		SafetyChecks: true,
		Backend:      BackendFFmpeg,
		FFmpegPath:   "ffmpeg",
		FFprobePath:  "ffprobe",
		LogFormat:    "text",
		LogLevel:     "info",
	}
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads the configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every field that is out of range.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NewLogger builds a structured logger writing to w. LogFormat "json"
// selects the JSON handler, anything else the text handler.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLogLevel(c.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(c.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// String lists every field on one line for logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{SampleRate: %d, SafetyChecks: %t, TmpPath: %q, Backend: %s, FFmpegPath: %s, FFprobePath: %s, LogFormat: %s, LogLevel: %s}",
		c.SampleRate,
		c.SafetyChecks,
		c.TmpPath,
		c.Backend,
		c.FFmpegPath,
		c.FFprobePath,
		c.LogFormat,
		c.LogLevel,
	)
}

// ParseLogLevel maps a level name to slog.Level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
