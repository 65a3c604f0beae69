// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"context"

	"github.com/ik5/audiofile/audio"
	"github.com/ik5/audiofile/ffmpeg"
	"github.com/ik5/audiofile/formats/wav"
	"github.com/ik5/audiofile/native"
	"github.com/ik5/audiofile/tempfile"
)

// Prober reads the properties of a media file without decoding it into
// memory. Errors wrap audio.ErrUnavailable, audio.ErrUnsupported or
// audio.ErrParseFailed.
type Prober interface {
	Probe(ctx context.Context, path string) (audio.Properties, error)
}

// Converter writes src to dst in the target format. Errors wrap
// audio.ErrUnavailable when the backend cannot run at all.
type Converter interface {
	Convert(ctx context.Context, src, dst string, target audio.Format) error
}

// Codec reads and writes canonical PCM files. Encode must not leave a
// partial file at path on failure.
type Codec interface {
	Decode(path string) (sampleRate int, samples []int16, err error)
	Encode(path string, sampleRate int, samples []int16) error
}

// TempProvider reserves temporary files. release removes the file and may
// be called more than once.
type TempProvider interface {
	Create(suffix string) (path string, release func() error, err error)
}

var (
	_ Prober       = (*ffmpeg.Prober)(nil)
	_ Prober       = (*native.Backend)(nil)
	_ Converter    = (*ffmpeg.Converter)(nil)
	_ Converter    = (*native.Backend)(nil)
	_ Codec        = wav.Codec{}
	_ TempProvider = (*tempfile.Dir)(nil)
)
