// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audiofile/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOgg hands out interleaved values, at most max per read when set.
type mockOgg struct {
	sampleRate int
	channels   int
	values     []float32
	max        int
	err        error
}

func (m *mockOgg) SampleRate() int { return m.sampleRate }
func (m *mockOgg) Channels() int   { return m.channels }

func (m *mockOgg) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	if len(m.values) == 0 {
		return 0, io.EOF
	}

	n := len(buf)
	if m.max > 0 {
		n = min(n, m.max)
	}
	n = copy(buf[:n], m.values)
	m.values = m.values[n:]

	return n, nil
}

func readAll(t *testing.T, src audio.Source, bufSize int) []float32 {
	t.Helper()

	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	for name, input := range map[string][]byte{
		"garbage": []byte("This is not Ogg Vorbis data"),
		"empty":   {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(input))
			require.ErrorIs(t, err, ErrNotVorbis)
			assert.ErrorIs(t, err, audio.ErrUnsupported)
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOgg{sampleRate: 48000, channels: 2}, sampleRate: 48000, channels: 2}

	assert.Equal(t, 48000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, 4096, src.BufSize())
	assert.NoError(t, src.Close())
}

func TestSource_ReadsValuesNotFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		values   []float32
		bufSize  int
	}{
		{name: "mono", channels: 1, values: []float32{0.1, 0.2, 0.3, 0.4, 0.5}, bufSize: 2},
		{name: "stereo", channels: 2, values: []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}, bufSize: 5},
		{name: "5.1", channels: 6, values: make([]float32, 6*10), bufSize: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values := append([]float32(nil), tt.values...)
			mock := &mockOgg{sampleRate: 44100, channels: tt.channels, values: values}
			src := &source{dec: mock, sampleRate: 44100, channels: tt.channels}

			assert.Equal(t, tt.values, readAll(t, src, tt.bufSize))
		})
	}
}

func TestSource_SmallDst(t *testing.T) {
	t.Parallel()

	mock := &mockOgg{sampleRate: 8000, channels: 2, values: []float32{1, 1}}
	src := &source{dec: mock, sampleRate: 8000, channels: 2}

	n, err := src.ReadSamples(make([]float32, 1))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSource_EOFIsSticky(t *testing.T) {
	t.Parallel()

	mock := &mockOgg{sampleRate: 8000, channels: 1, values: []float32{0.5}}
	src := &source{dec: mock, sampleRate: 8000, channels: 1}

	require.Len(t, readAll(t, src, 8), 1)

	n, err := src.ReadSamples(make([]float32, 8))
	require.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	mock := &mockOgg{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF}
	src := &source{dec: mock, sampleRate: 8000, channels: 1}

	_, err := src.ReadSamples(make([]float32, 8))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
