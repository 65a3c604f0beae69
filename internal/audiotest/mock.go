// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds helpers shared by the package tests: synthetic
// sources and fixture writers.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by sources built with FailAfter.
var ErrInjected = errors.New("injected read failure")

// Waveform yields the value of channel ch in frame i.
type Waveform func(i, ch int) float32

// MockSource generates frames from a Waveform. It satisfies audio.Source
// without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	chunk      int
	failAt     int
	closed     int
	waveform   Waveform
}

// NewMockSource creates a source of frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		failAt:     -1,
		waveform:   waveform,
	}
}

// NewSilentSource yields frames of zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource yields frames where every sample is value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewSineSource plays the same tone on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float32 {
		t := float64(i) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource yields i/frames on channel 0 and its negation on the others.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(i, ch int) float32 {
		v := float32(i) / float32(max(frames, 1))
		if ch > 0 {
			return -v
		}
		return v
	})
}

// WithChunk caps every read at n frames.
func (m *MockSource) WithChunk(n int) *MockSource {
	m.chunk = n
	return m
}

// FailAfter makes the read that would pass frame n return ErrInjected.
func (m *MockSource) FailAfter(n int) *MockSource {
	m.failAt = n
	return m
}

// SampleRate, Channels and BufSize report the construction values.
func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

// Close records that the source was closed.
func (m *MockSource) Close() error {
	m.closed++
	return nil
}

// Closed reports how many times Close was called.
func (m *MockSource) Closed() int { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.pos = 0
}

// ReadSamples yields whole frames until the configured count.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}

	if m.failAt >= 0 && m.pos+n > m.failAt {
		return 0, ErrInjected
	}

	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.pos+f, ch)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}
