// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ik5/audiofile/audio"
)

// openable stats path and checks that it can be opened for reading.
func openable(path string) (fs.FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no source path", ErrSourceUnreadable)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceUnreadable, path)
	}

	return info, nil
}

// needsConversion is true unless the declared source format can be read as
// is. A partial match still converts, and so does every reload of a file
// that was converted before.
func (a *AudioFile) needsConversion(target audio.Format) bool {
	if a.source.IsZero() {
		return true
	}

	return a.cfg.SafetyChecks && a.source != target
}

// Load reads the samples of the source file into memory, replacing any
// samples already there.
//
// Files whose declared format is not canonical are first converted into a
// temporary WAV file, which is removed before Load returns. With safety
// checks off, a declared format is trusted and the file is read directly.
func (a *AudioFile) Load(ctx context.Context) error {
	if _, err := openable(a.path); err != nil {
		return err
	}

	target := audio.Canonical(a.cfg.SampleRate)
	artifact := a.path

	if a.needsConversion(target) {
		tmp, release, err := a.temp.Create(".wav")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConverterUnavailable, err)
		}
		defer func() {
			if err := release(); err != nil {
				a.logger.WarnContext(ctx, "cannot remove temporary file", "tmp", tmp, "error", err)
			}
		}()

		a.logger.DebugContext(ctx, "converting", "declared", a.source.String(), "target", target.String(), "tmp", tmp)

		if err := a.converter.Convert(ctx, a.path, tmp, target); err != nil {
			if errors.Is(err, audio.ErrUnavailable) {
				return fmt.Errorf("%w: %w", ErrConverterUnavailable, err)
			}
			return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}

		a.format = target
		artifact = tmp
	} else if !a.cfg.SafetyChecks {
		a.logger.WarnContext(ctx, "safety checks disabled, reading file directly", "declared", a.source.String())
	} else {
		a.logger.DebugContext(ctx, "format is canonical, reading file directly")
	}

	rate, pcm, err := a.pcm.Decode(artifact)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	a.buf.ResetInt16(pcm)
	a.cleared = false
	a.codecName = CodecPCM16
	a.channels = 1
	a.sampleRate = rate
	a.updateDuration()

	a.logger.DebugContext(ctx, "loaded",
		"samples", a.buf.Len(),
		"rate", a.sampleRate,
		"duration", a.duration)

	return nil
}

// ensureLoaded runs at the top of every operation that reads samples.
func (a *AudioFile) ensureLoaded(ctx context.Context) error {
	if a.buf.Allocated() {
		return nil
	}
	if a.path == "" {
		return fmt.Errorf("%w: no samples and no source path", ErrNotInitialized)
	}

	return a.Load(ctx)
}
