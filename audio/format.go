// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// CodecPCMS16LE names signed 16-bit little endian PCM, the codec of the
// canonical format.
const CodecPCMS16LE = "pcm_s16le"

// Format describes how a file is encoded. The zero value means unknown.
type Format struct {
	Codec      string
	Channels   int
	SampleRate int
}

// Canonical is the format samples can be read from directly: mono
// pcm_s16le at sampleRate.
func Canonical(sampleRate int) Format {
	return Format{
		Codec:      CodecPCMS16LE,
		Channels:   1,
		SampleRate: sampleRate,
	}
}

// IsZero reports whether the format is unknown.
func (f Format) IsZero() bool {
	return f == Format{}
}

// String formats f as (codec, channels, rate).
func (f Format) String() string {
	if f.IsZero() {
		return "<unknown>"
	}

	return fmt.Sprintf("(%s, %d, %d)", f.Codec, f.Channels, f.SampleRate)
}

// Properties is what a prober reports about a media file. Zero fields were
// not reported.
type Properties struct {
	Duration   time.Duration
	Codec      string
	SampleRate int
	Channels   int
}
