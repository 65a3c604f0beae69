// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"context"
	"errors"
	"fmt"

	"github.com/ik5/audiofile/audio"
)

// ReadProperties fills FileSize, Duration, Codec, SampleRate and Channels
// from the prober. Samples are never loaded or touched.
func (a *AudioFile) ReadProperties(ctx context.Context) error {
	info, err := openable(a.path)
	if err != nil {
		return err
	}

	a.fileSize = info.Size()

	props, err := a.prober.Probe(ctx, a.path)
	if err != nil {
		if errors.Is(err, audio.ErrUnavailable) {
			return fmt.Errorf("%w: %w", ErrProbeUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	a.duration = props.Duration
	a.codecName = props.Codec
	a.sampleRate = props.SampleRate
	a.channels = props.Channels

	a.logger.DebugContext(ctx, "read properties",
		"size", a.fileSize,
		"duration", a.duration,
		"codec", a.codecName,
		"rate", a.sampleRate,
		"channels", a.channels)

	return nil
}
