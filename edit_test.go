// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ik5/audiofile/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(d time.Duration) *time.Duration { return &d }

// ramp returns n samples 0, 0.01, 0.02, ...
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / 100
	}
	return out
}

func inMemory(t *testing.T, rate int, samples []float64) *AudioFile {
	t.Helper()

	a := New("")
	require.NoError(t, a.SetSampleRate(rate))
	a.AddSamples(samples, false)

	return a
}

func TestAddSamples_FromEmpty(t *testing.T) {
	t.Parallel()

	a := New("")
	require.NoError(t, a.SetSampleRate(16000))
	a.AddSamples([]float64{0.1, -0.2, 0.3, -0.4}, false)

	assert.Equal(t, 4, a.Len())
	assert.GreaterOrEqual(t, a.Cap(), 8)
	assert.Equal(t, 4*time.Second/16000, a.Duration())
	assert.Equal(t, StateLoaded, a.State())

	got, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, -0.2, 0.3, -0.4}, got)
}

func TestAddSamples_Reverse(t *testing.T) {
	t.Parallel()

	a := inMemory(t, 8000, []float64{0.1, 0.2})
	a.AddSamples([]float64{0.3, 0.4, 0.5}, true)

	got, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.5, 0.4, 0.3}, got)
}

func TestAddSamples_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	in := []float64{0.1, 0.2, 0.3}
	a := inMemory(t, 8000, in)
	in[0] = 0.9

	got, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.InDelta(t, 0.1, got[0], 0)
}

func TestAddSamples_LogarithmicReallocations(t *testing.T) {
	t.Parallel()

	a := New("")
	total := 0
	for i := 1; i <= 2000; i++ {
		a.AddSamples(make([]float64, i%7+1), false)
		total += i%7 + 1
	}

	assert.Equal(t, total, a.Len())
	assert.LessOrEqual(t, a.buf.Reallocations(), int(math.Ceil(math.Log2(float64(total))))+1)
}

func TestAddSamples_NoSampleRateLeavesDuration(t *testing.T) {
	t.Parallel()

	a := New("")
	a.AddSamples([]float64{0.1, 0.2}, false)

	assert.Zero(t, a.Duration())
	assert.Equal(t, 2, a.Len())

	require.NoError(t, a.SetSampleRate(2))
	assert.Equal(t, time.Second, a.Duration())
}

func TestPreallocate(t *testing.T) {
	t.Parallel()

	a := inMemory(t, 10, ramp(6))
	a.MinimizeMemory()
	require.Equal(t, 6, a.Cap())

	require.NoError(t, a.Preallocate(20))
	assert.Equal(t, 20, a.Cap())
	assert.Equal(t, 6, a.Len())

	require.NoError(t, a.Preallocate(4))
	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 400*time.Millisecond, a.Duration())

	got, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, ramp(4), got)
}

func TestPreallocate_Idempotent(t *testing.T) {
	t.Parallel()

	a := inMemory(t, 10, ramp(5))
	require.NoError(t, a.Preallocate(12))

	before, err := a.Samples(t.Context())
	require.NoError(t, err)
	before = append([]float64(nil), before...)
	reallocs := a.buf.Reallocations()

	require.NoError(t, a.Preallocate(12))

	after, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, reallocs, a.buf.Reallocations())
}

func TestPreallocate_Negative(t *testing.T) {
	t.Parallel()

	err := New("").Preallocate(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, buffer.ErrInvalidCapacity)
}

func TestPreallocate_StartsEmptyBuffer(t *testing.T) {
	t.Parallel()

	a := New("")
	require.NoError(t, a.Preallocate(8))

	assert.Equal(t, StateLoaded, a.State())
	assert.Equal(t, 8, a.Cap())
	assert.Zero(t, a.Len())
}

func TestMinimizeMemory(t *testing.T) {
	t.Parallel()

	logger, logs := logBuffer()
	empty := New("", WithLogger(logger))
	empty.MinimizeMemory()
	assert.Equal(t, StateUnpopulated, empty.State())
	assert.Contains(t, logs.String(), "nothing to minimize")

	a := inMemory(t, 8000, ramp(5))
	require.Equal(t, 10, a.Cap())
	a.MinimizeMemory()
	assert.Equal(t, 5, a.Cap())
	assert.Equal(t, 5, a.Len())
}

func TestSamples_ViewIsClipped(t *testing.T) {
	t.Parallel()

	a := inMemory(t, 8000, ramp(3))
	require.Greater(t, a.Cap(), a.Len())

	view, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, cap(view))

	_ = append(view, 0.99)

	a.AddSamples([]float64{0.5}, false)
	got, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.01, 0.02, 0.5}, got)
}

func TestSamples_NotInitialized(t *testing.T) {
	t.Parallel()

	_, err := New("").Samples(t.Context())
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestReverse_Twice(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	in := make([]float64, 1001)
	for i := range in {
		in[i] = r.Float64()*2 - 1
	}

	a := inMemory(t, 8000, in)
	require.NoError(t, a.Reverse(t.Context()))

	got, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, in[0], got[len(got)-1])
	assert.Equal(t, 2002, a.Cap(), "capacity untouched")

	require.NoError(t, a.Reverse(t.Context()))
	got, err = a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestReverse_NotInitialized(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, New("").Reverse(t.Context()), ErrNotInitialized)
}

func TestTrim_Scenario(t *testing.T) {
	t.Parallel()

	a := inMemory(t, 10, ramp(10))
	require.Equal(t, time.Second, a.Duration())
	capBefore := a.Cap()

	require.NoError(t, a.Trim(t.Context(), ptr(200*time.Millisecond), ptr(500*time.Millisecond)))

	assert.Equal(t, 5, a.Len())
	assert.Equal(t, capBefore, a.Cap())
	assert.Equal(t, 500*time.Millisecond, a.Duration())

	got, err := a.Samples(t.Context())
	require.NoError(t, err)
	assert.Equal(t, ramp(10)[2:7], got)
}

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		begin    *time.Duration
		length   *time.Duration
		wantFrom int
		wantTo   int
	}{
		{name: "both nil", wantFrom: 0, wantTo: 100},
		{name: "begin only", begin: ptr(250 * time.Millisecond), wantFrom: 25, wantTo: 100},
		{name: "length only", length: ptr(300 * time.Millisecond), wantFrom: 0, wantTo: 30},
		{name: "negative begin", begin: ptr(-time.Second), length: ptr(100 * time.Millisecond), wantFrom: 0, wantTo: 10},
		{name: "negative length", begin: ptr(100 * time.Millisecond), length: ptr(-time.Second), wantFrom: 10, wantTo: 10},
		{name: "begin past end", begin: ptr(5 * time.Second), wantFrom: 100, wantTo: 100},
		{name: "length past end", begin: ptr(900 * time.Millisecond), length: ptr(time.Hour), wantFrom: 90, wantTo: 100},
		{name: "rounds to nearest", begin: ptr(14 * time.Millisecond), length: ptr(22 * time.Millisecond), wantFrom: 1, wantTo: 4},
		{name: "whole", begin: ptr(0), length: ptr(time.Second), wantFrom: 0, wantTo: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := inMemory(t, 100, ramp(100))
			require.NoError(t, a.Trim(t.Context(), tt.begin, tt.length))

			got, err := a.Samples(t.Context())
			require.NoError(t, err)
			assert.Equal(t, ramp(100)[tt.wantFrom:tt.wantTo], got)
			assert.Equal(t, time.Duration(tt.wantTo-tt.wantFrom)*10*time.Millisecond, a.Duration())
		})
	}
}

func TestTrim_DurationMatchesLength(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 11025, 16000, 22050, 44100} {
		a := inMemory(t, rate, make([]float64, 3*rate+7))
		length := 1234567 * time.Microsecond

		require.NoError(t, a.Trim(t.Context(), ptr(333*time.Millisecond), ptr(length)))

		period := time.Second / time.Duration(rate)
		assert.InDelta(t, float64(length), float64(a.Duration()), float64(period), "rate %d", rate)
	}
}

func TestTrim_IdempotentOnWholeDuration(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{7, 8000, 44100} {
		in := ramp(rate + 3)
		a := inMemory(t, rate, in)

		require.NoError(t, a.Trim(t.Context(), ptr(0), ptr(a.Duration())))

		got, err := a.Samples(t.Context())
		require.NoError(t, err)
		assert.Equal(t, in, got, "rate %d", rate)
	}
}

func TestTrim_UnknownSampleRate(t *testing.T) {
	t.Parallel()

	a := New("")
	a.AddSamples(ramp(4), false)

	err := a.Trim(t.Context(), ptr(0), nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 4, a.Len())
}

func TestTrim_NotInitialized(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, New("").Trim(t.Context(), ptr(0), nil), ErrNotInitialized)
	require.NoError(t, New("").Trim(t.Context(), nil, nil), "both nil never touches samples")
}

func TestSampleIndex_LargeDurations(t *testing.T) {
	t.Parallel()

	a := New("")
	require.NoError(t, a.SetSampleRate(48000))

	assert.Equal(t, 48000*3600*100, a.sampleIndex(100*time.Hour))
	assert.Equal(t, 1, a.sampleIndex(time.Second/96000+1))
	assert.Equal(t, 0, a.sampleIndex(time.Second/96000-1))
}

func TestSetSampleRate_Invalid(t *testing.T) {
	t.Parallel()

	a := New("")
	require.ErrorIs(t, a.SetSampleRate(0), ErrInvalidArgument)
	require.ErrorIs(t, a.SetSampleRate(-44100), ErrInvalidArgument)
	assert.Zero(t, a.SampleRate())
}

func TestClearData_InMemory(t *testing.T) {
	t.Parallel()

	a := inMemory(t, 8000, ramp(4))
	a.ClearData()

	assert.Equal(t, StateCleared, a.State())
	assert.Zero(t, a.Len())
	assert.Zero(t, a.Cap())

	_, err := a.Samples(t.Context())
	require.ErrorIs(t, err, ErrNotInitialized)

	a.AddSamples([]float64{0.5}, false)
	assert.Equal(t, StateLoaded, a.State())
}
