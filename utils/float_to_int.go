// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample conversions shared by the buffer, the codecs
// and the streaming pipeline.
//
// A 16-bit PCM sample v maps to v / 32768.0, so the full int16 range lands in
// [-1.0, 1.0). The inverse rounds to the nearest integer and clamps, which
// makes 1.0 come back as math.MaxInt16.
package utils

import "math"

// Int16Scale is the divisor between int16 PCM and normalized samples.
const Int16Scale = 32768.0

// Int16ToFloat64 normalizes a 16-bit PCM sample.
func Int16ToFloat64(v int16) float64 {
	return float64(v) / Int16Scale
}

// Float64ToInt16 quantizes a normalized sample, clamping out of range values.
// NaN maps to silence.
func Float64ToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * Int16Scale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Float32ToInt16 quantizes a sample from the float32 streaming pipeline
// using the same mapping as Float64ToInt16.
func Float32ToInt16(x float32) int16 {
	return Float64ToInt16(float64(x))
}

// Int16sToFloat64s normalizes a whole PCM block into a new slice.
func Int16sToFloat64s(src []int16) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v) / Int16Scale
	}

	return dst
}

// Float64sToInt16s quantizes a block of normalized samples into a new slice.
func Float64sToInt16s(src []float64) []int16 {
	dst := make([]int16, len(src))
	for i, x := range src {
		dst[i] = Float64ToInt16(x)
	}

	return dst
}
