// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audiofile/audio"
)

// go-mp3 always yields 16-bit little endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// ErrNotMP3 wraps every failure to open an MP3 stream.
var ErrNotMP3 = fmt.Errorf("%w: not an MP3 stream", audio.ErrUnsupported)

// pcmReader is the part of gomp3.Decoder the source needs.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte

	// carry is the size of a partial frame left at the front of buf.
	carry int
	eof   bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / channels
	if frames == 0 {
		if s.eof {
			return 0, io.EOF
		}
		return 0, nil
	}

	need := frames * bytesPerFrame
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.carry])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n := s.carry
	for n < need && !s.eof {
		m, err := s.dec.Read(s.buf[n:])
		n += m

		if errors.Is(err, io.EOF) {
			s.eof = true
		} else if err != nil {
			return 0, fmt.Errorf("mp3 read: %w", err)
		} else if m == 0 {
			break
		}

		// one decoded MP3 frame per read is enough
		if n >= bytesPerFrame {
			break
		}
	}

	whole := n - n%bytesPerFrame
	for i := 0; i < whole/2; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768
	}

	s.carry = copy(s.buf, s.buf[whole:n])

	if s.eof {
		s.carry = 0
		return whole / 2, io.EOF
	}

	return whole / 2, nil
}

// Decoder decodes MPEG-1/2 Layer III with github.com/hajimehoshi/go-mp3.
type Decoder struct{}

// Decode opens an MP3 stream from r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
