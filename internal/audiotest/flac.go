// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
	"github.com/stretchr/testify/require"
)

const flacBlockSize = 1024

// WriteFLAC encodes mono or stereo 16-bit PCM as verbatim FLAC frames.
// data is interleaved like WriteWAV.
func WriteFLAC(tb testing.TB, dir, name string, sampleRate, channels int, data []int) string {
	tb.Helper()

	require.Contains(tb, []int{1, 2}, channels)

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(tb, err)

	frames := len(data) / channels
	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(sampleRate),
		NChannels:     uint8(channels),
		BitsPerSample: 16,
		NSamples:      uint64(frames),
	}

	enc, err := flac.NewEncoder(f, info)
	require.NoError(tb, err)

	layout := frame.ChannelsMono
	if channels == 2 {
		layout = frame.ChannelsLR
	}

	for num, start := 0, 0; start < frames; num, start = num+1, start+flacBlockSize {
		n := min(flacBlockSize, frames-start)

		subframes := make([]*frame.Subframe, channels)
		for ch := range subframes {
			samples := make([]int32, n)
			for i := range samples {
				samples[i] = int32(data[(start+i)*channels+ch])
			}
			subframes[ch] = &frame.Subframe{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   samples,
				NSamples:  n,
			}
		}

		fr := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: false,
				BlockSize:         uint16(n),
				SampleRate:        uint32(sampleRate),
				Channels:          layout,
				BitsPerSample:     16,
				Num:               uint64(num),
			},
			Subframes: subframes,
		}
		require.NoError(tb, enc.WriteFrame(fr))
	}

	// the encoder closes f
	require.NoError(tb, enc.Close())

	return path
}
