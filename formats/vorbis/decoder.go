// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audiofile/audio"
	"github.com/jfreymuth/oggvorbis"
)

// ErrNotVorbis wraps every failure to open an Ogg Vorbis stream.
var ErrNotVorbis = fmt.Errorf("%w: not an Ogg Vorbis stream", audio.ErrUnsupported)

// oggReader is the part of oggvorbis.Reader the source needs. Read returns
// the number of interleaved values, not frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:want])
	if errors.Is(err, io.EOF) {
		s.eof = true
	} else if err != nil {
		return 0, fmt.Errorf("vorbis read: %w", err)
	}

	n -= n % s.channels
	if s.eof {
		return n, io.EOF
	}

	return n, nil
}

// Decoder decodes Ogg Vorbis with github.com/jfreymuth/oggvorbis.
type Decoder struct{}

// Decode opens an Ogg Vorbis stream from r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}

	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrNotVorbis)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
