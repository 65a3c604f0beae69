// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"context"
	"fmt"
)

// Write stores the samples at dst as 16-bit PCM at SampleRate, loading them
// first if needed. The codec replaces dst atomically, so a failed Write
// leaves any previous file in place.
func (a *AudioFile) Write(ctx context.Context, dst string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	if a.sampleRate <= 0 {
		return fmt.Errorf("%w: %w: sample rate is not known", ErrWriteFailed, ErrInvalidArgument)
	}

	a.logger.DebugContext(ctx, "writing", "dst", dst, "samples", a.buf.Len(), "rate", a.sampleRate)

	if err := a.pcm.Encode(dst, a.sampleRate, a.buf.Int16()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, dst, err)
	}

	return nil
}
