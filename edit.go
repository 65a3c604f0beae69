// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"context"
	"fmt"
	"time"
)

// Preallocate sets the sample capacity to exactly capacity, keeping the
// first min(Len(), capacity) samples.
func (a *AudioFile) Preallocate(capacity int) error {
	if err := a.buf.Preallocate(capacity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	a.cleared = false
	a.updateDuration()

	return nil
}

// MinimizeMemory drops the capacity beyond Len(). Call it after the last
// AddSamples when building audio incrementally.
func (a *AudioFile) MinimizeMemory() {
	if !a.buf.Allocated() {
		a.logger.Debug("not initialized, nothing to minimize")
		return
	}

	a.buf.ShrinkToFit()
}

// AddSamples appends normalized samples, reversed first when reverse is
// set. The capacity doubles when it runs out, so repeated calls cost
// amortized O(1) per sample.
//
// It does not load the source file: on a handle without samples it starts
// a new buffer.
func (a *AudioFile) AddSamples(samples []float64, reverse bool) {
	a.buf.Append(samples, reverse)
	a.cleared = false
	a.updateDuration()
}

// SetSampleRate sets the rate of samples built in memory.
func (a *AudioFile) SetSampleRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidArgument, rate)
	}

	a.sampleRate = rate
	a.updateDuration()

	return nil
}

// Samples returns the valid samples, loading them first if needed. The
// slice shares storage with the AudioFile until the next mutating call;
// appending to it never writes into the buffer.
func (a *AudioFile) Samples(ctx context.Context) ([]float64, error) {
	if err := a.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	return a.buf.Samples(), nil
}

// Reverse flips the sample order in place, loading samples first if needed.
func (a *AudioFile) Reverse(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	a.buf.Reverse()

	return nil
}

// Trim keeps length of audio starting at begin. A nil begin means the
// start, a nil length means up to the end; both nil is a no-op. Values are
// clamped to the audio. The capacity is left alone.
func (a *AudioFile) Trim(ctx context.Context, begin, length *time.Duration) error {
	if begin == nil && length == nil {
		return nil
	}

	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	if a.sampleRate <= 0 {
		return fmt.Errorf("%w: trim needs a known sample rate", ErrInvalidArgument)
	}

	a.updateDuration()
	total := a.duration

	var b time.Duration
	if begin != nil {
		b = *begin
	}
	b = min(max(b, 0), total)

	l := total - b
	if length != nil {
		l = *length
	}
	l = min(max(l, 0), total-b)

	bi := a.sampleIndex(b)
	ei := min(a.sampleIndex(b+l), a.buf.Len())
	bi = min(bi, ei)

	if err := a.buf.Slice(bi, ei); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	a.updateDuration()

	a.logger.Debug("trimmed", "begin", b, "length", l, "from", bi, "to", ei)

	return nil
}

// sampleIndex rounds d*SampleRate to the nearest sample without going
// through floating point.
func (a *AudioFile) sampleIndex(d time.Duration) int {
	rate := int64(a.sampleRate)
	sec := int64(d / time.Second)
	frac := int64(d % time.Second)

	return int(sec*rate + (frac*rate+int64(time.Second)/2)/int64(time.Second))
}

// ClearData releases the samples. A handle with a source path loads them
// again on the next sample operation.
func (a *AudioFile) ClearData() {
	a.buf.Clear()
	a.cleared = true
}
