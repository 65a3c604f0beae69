// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Resampler converts a Source to another sample rate with Catmull-Rom cubic
// interpolation, keeping the channel count. When downsampling, incoming
// frames go through a one-pole low-pass first.
//
// A source of N frames produces floor((N-1)/step)+1 frames, where step is
// srcRate/dstRate, so a same-rate Resampler passes frames through unchanged.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64
	channels int

	// window holds four consecutive source frames t-1, t, t+1, t+2.
	// Output frames are interpolated between t and t+1; pos is the
	// fractional offset from t.
	window [4][]float32
	filled [4]bool
	pos    float64
	primed bool
	done   bool

	in    []float32
	inPos int
	inLen int
	eof   bool

	lowpass []float32
	alpha   float32
	filter  bool
	warm    bool
}

// NewResampler expects src to return whole frames from ReadSamples.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	bufSize := max(src.BufSize(), channels)
	bufSize -= bufSize % channels

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, bufSize),
		lowpass:  make([]float32, channels),
		filter:   step > 1,
	}
	if r.filter {
		r.alpha = float32(1 / step)
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

// SampleRate is the target rate.
func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Close closes the wrapped source.
func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler close: %w", err)
	}

	return nil
}

// nextFrame copies the next source frame into dst.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.inPos+r.channels > r.inLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("resampler read: %w", err)
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.filter {
		if !r.warm {
			copy(r.lowpass, dst)
			r.warm = true
		}
		for c := range dst {
			r.lowpass[c] = r.alpha*dst[c] + (1-r.alpha)*r.lowpass[c]
			dst[c] = r.lowpass[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	for i := 1; i < 4; i++ {
		ok, err := r.nextFrame(r.window[i])
		if err != nil {
			return err
		}
		r.filled[i] = ok
		if !ok {
			break
		}
	}

	copy(r.window[0], r.window[1])
	r.primed = true

	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	r.filled[3] = false
	if !r.filled[2] {
		return nil
	}

	ok, err := r.nextFrame(r.window[3])
	r.filled[3] = ok

	return err
}

// ReadSamples writes resampled frames to dst, whose length must be a
// multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames && !r.done {
		for r.pos >= 1 {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
			r.pos--
		}

		// frame t is the last one, only an exact hit on it is in range
		if !r.filled[1] || (!r.filled[2] && r.pos > 0) {
			r.done = true
			break
		}

		r.interpolate(dst[written*r.channels : (written+1)*r.channels])
		written++
		r.pos += r.step
	}

	if r.done {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}

func (r *Resampler) interpolate(dst []float32) {
	y1 := r.window[1]
	y0 := y1
	if r.filled[0] {
		y0 = r.window[0]
	}

	y2 := y1
	if r.filled[2] {
		y2 = r.window[2]
	}

	y3 := y2
	if r.filled[3] {
		y3 = r.window[3]
	}

	x := float32(r.pos)
	for c := range dst {
		dst[c] = catmullRom(y0[c], y1[c], y2[c], y3[c], x)
	}
}

// catmullRom interpolates between y1 (x=0) and y2 (x=1).
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
