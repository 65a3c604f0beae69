// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full scale positive clamps", input: 1.0, want: math.MaxInt16},
		{name: "full scale negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16384},
		{name: "half negative", input: -0.5, want: -16384},
		{name: "rounds to nearest", input: 0.1, want: 3277},
		{name: "rounds negative to nearest", input: -0.2, want: -6554},
		{name: "one step", input: 1.0 / 32768.0, want: 1},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: math.MinInt16},
		{name: "clamp way over max", input: 100, want: math.MaxInt16},
		{name: "nan is silence", input: math.NaN(), want: 0},
		{name: "positive infinity", input: math.Inf(1), want: math.MaxInt16},
		{name: "negative infinity", input: math.Inf(-1), want: math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Float64ToInt16(tt.input))
		})
	}
}

func TestInt16ToFloat64(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, Int16ToFloat64(0), 0)
	assert.InDelta(t, -1.0, Int16ToFloat64(math.MinInt16), 0)
	assert.InDelta(t, 0.5, Int16ToFloat64(16384), 0)
	assert.Less(t, Int16ToFloat64(math.MaxInt16), 1.0)
}

// Every int16 must survive normalize-then-quantize unchanged.
func TestInt16RoundTripIsExact(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		got := Float64ToInt16(Int16ToFloat64(int16(v)))
		if got != int16(v) {
			require.Failf(t, "round trip mismatch", "value %d came back as %d", v, got)
		}
	}
}

func TestFloat64ToInt16QuantizationError(t *testing.T) {
	t.Parallel()

	for f := -1.0; f < 1.0; f += 0.0007 {
		back := Int16ToFloat64(Float64ToInt16(f))
		assert.InDelta(t, f, back, 1.0/Int16Scale, "sample %v", f)
	}
}

func TestFloat64ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float64ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float64ToInt16(f)
		assert.GreaterOrEqual(t, curr, prev, "not monotonic at %v", f)
		prev = curr
	}
}

func TestFloat32ToInt16MatchesFloat64(t *testing.T) {
	t.Parallel()

	for _, v := range []float32{-1, -0.75, -0.25, 0, 0.25, 0.5, 0.999, 1, 2} {
		assert.Equal(t, Float64ToInt16(float64(v)), Float32ToInt16(v), "value %v", v)
	}
}

func TestBlockConversions(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 16384, -16384, math.MaxInt16, math.MinInt16}
	floats := Int16sToFloat64s(pcm)

	require.Len(t, floats, len(pcm))
	assert.InDelta(t, 0.5, floats[1], 0)
	assert.InDelta(t, -1.0, floats[4], 0)
	assert.Equal(t, pcm, Float64sToInt16s(floats))

	assert.Empty(t, Int16sToFloat64s(nil))
	assert.Empty(t, Float64sToInt16s(nil))
}

func TestFloat64ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float64ToInt16(0.5)
	})

	assert.Zero(t, allocs)
}

func BenchmarkFloat64sToInt16s(b *testing.B) {
	// one second of mono audio at 16kHz
	samples := make([]float64, 16000)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.1)
	}

	b.ReportAllocs()

	for range b.N {
		_ = Float64sToInt16s(samples)
	}
}
