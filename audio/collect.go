// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audiofile/utils"
)

// DefaultBufSize is the read size used when a caller passes zero.
const DefaultBufSize = 4096

// ReadAllMono16 drains src through a mono mixer and a resampler and returns
// the result as 16-bit PCM at sampleRate. Mixing happens before resampling
// so the interpolation runs on a single channel.
//
// src is closed before returning.
func ReadAllMono16(ctx context.Context, src Source, sampleRate, bufSize int) ([]int16, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}

	pipe := NewResampler(NewMonoMixer(src), sampleRate)
	defer pipe.Close() //nolint:errcheck // read side

	pcm := make([]int16, 0, bufSize)
	buf := make([]float32, bufSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read mono samples: %w", err)
		}

		n, err := pipe.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mono samples: %w", err)
		}
	}

	return pcm, nil
}

// CountFrames reads src to the end and returns how many frames it held.
// src is not closed.
func CountFrames(ctx context.Context, src Source, bufSize int) (int, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}

	channels := max(src.Channels(), 1)
	bufSize = max(bufSize-bufSize%channels, channels)
	buf := make([]float32, bufSize)

	var total int
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("count frames: %w", err)
		}

		n, err := src.ReadSamples(buf)
		total += n

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("count frames: %w", err)
		}
	}

	return total / channels, nil
}
