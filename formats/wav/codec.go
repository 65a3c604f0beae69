// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Codec reads and writes whole mono 16-bit WAV files by path.
type Codec struct{}

// Decode returns the sample rate and samples of a mono 16-bit PCM WAV.
func (Codec) Decode(path string) (int, []int16, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("wav decode: %w", err)
	}
	defer f.Close() //nolint:errcheck // read only

	dec, err := readHeader(f)
	if err != nil {
		return 0, nil, err
	}

	if dec.NumChans != 1 || dec.BitDepth != 16 {
		return 0, nil, fmt.Errorf("%w: %d channels at %d bits", ErrNotMono16, dec.NumChans, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("wav decode %s: read samples: %w", path, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	return int(dec.SampleRate), samples, nil
}

// Encode writes samples as mono 16-bit PCM. The file is written next to path
// and renamed into place, so a failed write leaves no partial output.
func (Codec) Encode(path string, sampleRate int, samples []int16) (err error) {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}

	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	enc := gowav.NewEncoder(f, sampleRate, 16, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err = enc.Write(buf); err != nil {
		return fmt.Errorf("wav encode %s: write samples: %w", path, err)
	}

	if err = enc.Close(); err != nil {
		return fmt.Errorf("wav encode %s: finish header: %w", path, err)
	}

	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("wav encode %s: %w", path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("wav encode %s: %w", path, err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}

	return nil
}
