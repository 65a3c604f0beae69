// SPDX-License-Identifier: EPL-2.0

// Package buffer implements a growable store of mono samples.
//
// A Buffer keeps normalized float64 samples in [-1.0, 1.0] inside a backing
// slice whose length is the buffer capacity. Only the first Len() values are
// valid; everything after that is scratch space and is never returned.
//
// Growth goes through a single primitive, Preallocate. Append doubles the
// capacity whenever it runs out of room, so a sequence of appends totalling
// N samples reallocates O(log N) times.
package buffer

import (
	"fmt"
	"slices"

	"github.com/ik5/audiofile/utils"
)

// Buffer is not safe for concurrent use. The zero value is an unallocated
// buffer.
type Buffer struct {
	data     []float64
	length   int
	reallocs int
}

// Allocated reports whether the buffer owns storage, even zero sized.
func (b *Buffer) Allocated() bool { return b.data != nil }

// Len is the number of valid samples.
func (b *Buffer) Len() int { return b.length }

// Cap is the number of allocated slots.
func (b *Buffer) Cap() int { return len(b.data) }

// Reallocations counts how many times the storage was replaced.
func (b *Buffer) Reallocations() int { return b.reallocs }

// Preallocate sets the capacity to exactly capacity slots.
//
// An unallocated buffer gets capacity zeroed slots and length 0. An allocated
// buffer keeps its first min(Len(), capacity) samples, new slots are zero and
// the length is cut down to the new capacity when needed.
func (b *Buffer) Preallocate(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	if b.data == nil {
		b.data = make([]float64, capacity)
		b.length = 0
		b.reallocs++

		return nil
	}

	b.length = min(b.length, capacity)
	if capacity == len(b.data) {
		return nil
	}

	grown := make([]float64, capacity)
	copy(grown, b.data[:b.length])
	b.data = grown
	b.reallocs++

	return nil
}

// ShrinkToFit drops the slack after the valid samples. It does nothing on
// an unallocated buffer.
func (b *Buffer) ShrinkToFit() {
	if b.data == nil {
		return
	}
	// cannot fail, length is never negative
	_ = b.Preallocate(b.length)
}

// Append copies samples after the current valid ones, reversed when reverse
// is set. The capacity doubles to 2*(Len()+len(samples)) when it is too small.
func (b *Buffer) Append(samples []float64, reverse bool) {
	n := len(samples)
	future := b.length + n

	if b.data == nil || len(b.data) < future {
		_ = b.Preallocate(2 * future)
	}

	dst := b.data[b.length:future]
	copy(dst, samples)
	if reverse {
		slices.Reverse(dst)
	}

	b.length = future
}

// Reverse flips the order of the valid samples in place.
func (b *Buffer) Reverse() {
	slices.Reverse(b.data[:b.length])
}

// Slice keeps samples [begin, end) and moves them to the front. The capacity
// does not change.
func (b *Buffer) Slice(begin, end int) error {
	if begin < 0 || end < begin || end > b.length {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrInvalidRange, begin, end, b.length)
	}

	n := copy(b.data, b.data[begin:end])
	b.length = n

	return nil
}

// Clear releases the storage.
func (b *Buffer) Clear() {
	b.data = nil
	b.length = 0
}

// Reset takes ownership of samples; capacity and length become len(samples).
func (b *Buffer) Reset(samples []float64) {
	if samples == nil {
		samples = []float64{}
	}

	b.data = samples
	b.length = len(samples)
	b.reallocs++
}

// ResetInt16 is Reset for decoded PCM.
func (b *Buffer) ResetInt16(pcm []int16) {
	b.Reset(utils.Int16sToFloat64s(pcm))
}

// Samples returns the valid samples. The view shares storage with the buffer
// but its capacity stops at Len(), so appending to it never writes into the
// buffer. It is nil for an unallocated buffer.
func (b *Buffer) Samples() []float64 {
	if b.data == nil {
		return nil
	}

	return b.data[:b.length:b.length]
}

// Int16 quantizes the valid samples into a new PCM slice.
func (b *Buffer) Int16() []int16 {
	return utils.Float64sToInt16s(b.data[:b.length])
}
