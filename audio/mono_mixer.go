// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes a Source to one channel by averaging each frame.
// A mono source passes through untouched.
type MonoMixer struct {
	src      Source
	channels int
	tmp      []float32
}

// NewMonoMixer averages the channels of src into one.
func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:      src,
		channels: max(src.Channels(), 1),
	}
}

// SampleRate is the rate of the wrapped source.
func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

// Close closes the wrapped source.
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("mono mixer close: %w", err)
	}

	return nil
}

// ReadSamples fills dst with mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if m.channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * m.channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, max(need, 8192))
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / m.channels

	switch m.channels {
	case 2:
		for f := range frames {
			i := f << 1
			dst[f] = (m.tmp[i] + m.tmp[i+1]) * 0.5
		}
	default:
		scale := 1 / float32(m.channels)
		for f := range frames {
			var sum float32
			for _, v := range m.tmp[f*m.channels : (f+1)*m.channels] {
				sum += v
			}
			dst[f] = sum * scale
		}
	}

	return frames, err //nolint:wrapcheck // io.EOF must reach the caller as is
}
