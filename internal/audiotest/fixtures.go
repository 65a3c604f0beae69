// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

// WriteWAV encodes interleaved integer PCM into dir/name and returns the
// full path. The file is removed with the test's temp dir.
func WriteWAV(tb testing.TB, dir, name string, sampleRate, channels, bitDepth int, data []int) string {
	tb.Helper()

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(tb, err)

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	require.NoError(tb, enc.Write(buf))
	require.NoError(tb, enc.Close())
	require.NoError(tb, f.Close())

	return path
}

// WriteAIFF is WriteWAV for AIFF containers.
func WriteAIFF(tb testing.TB, dir, name string, sampleRate, channels, bitDepth int, data []int) string {
	tb.Helper()

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(tb, err)

	enc := aiff.NewEncoder(f, sampleRate, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	require.NoError(tb, enc.Write(buf))
	require.NoError(tb, enc.Close())
	require.NoError(tb, f.Close())

	return path
}

// WriteMono16 is WriteWAV for mono 16-bit samples.
func WriteMono16(tb testing.TB, dir, name string, sampleRate int, samples []int16) string {
	tb.Helper()

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	return WriteWAV(tb, dir, name, sampleRate, 1, 16, data)
}

// Ramp16 returns n mono samples stepping evenly through the int16 range.
func Ramp16(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(-32768 + (65535*i)/max(n-1, 1))
	}

	return out
}
