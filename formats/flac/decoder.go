// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audiofile/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

var (
	// ErrNotFLAC wraps every failure to open a FLAC stream.
	ErrNotFLAC = fmt.Errorf("%w: not a FLAC stream", audio.ErrUnsupported)

	// ErrChannelMismatch means a frame carried a different channel count
	// than the stream header.
	ErrChannelMismatch = fmt.Errorf("%w: FLAC frame channel count changed", audio.ErrUnsupported)
)

// frameReader is the part of flac.Stream the source needs.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	scale      float32

	// pending holds the interleaved samples of the current frame.
	pending []float32
	pos     int
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

// Close leaves the underlying reader open; it belongs to the caller.
func (s *source) Close() error { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) - len(dst)%s.channels
	written := 0

	for written < want {
		if s.pos == len(s.pending) {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:want], s.pending[s.pos:])
		s.pos += n
		written += n
	}

	if s.eof && s.pos == len(s.pending) {
		return written, io.EOF
	}

	return written, nil
}

func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		s.eof = true
		s.pending, s.pos = s.pending[:0], 0
		return nil
	}
	if err != nil {
		return fmt.Errorf("flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d != %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	blockSize := int(f.BlockSize)
	need := blockSize * s.channels
	if cap(s.pending) < need {
		s.pending = make([]float32, need)
	}
	s.pending, s.pos = s.pending[:need], 0

	for ch, sub := range f.Subframes {
		for i, v := range sub.Samples[:blockSize] {
			s.pending[i*s.channels+ch] = float32(v) * s.scale
		}
	}

	return nil
}

// Decoder decodes FLAC with github.com/mewkiz/flac.
type Decoder struct{}

// Decode opens a FLAC stream from r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFLAC, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 || info.BitsPerSample == 0 {
		return nil, fmt.Errorf("%w: incomplete stream info", ErrNotFLAC)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      1 / float32(int64(1)<<(info.BitsPerSample-1)),
	}, nil
}
