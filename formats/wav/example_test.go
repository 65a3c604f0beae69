// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audiofile/audio"
	"github.com/ik5/audiofile/formats/wav"
)

func Example_decoding() {
	data := new(bytes.Buffer)
	_ = wav.WriteWAV16(data, 16000, []int16{100, 200, 300, 400, 500})

	source, err := wav.Decoder{}.Decode(data)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]float32, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples
}

func Example_encoding() {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, 8000, samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	// Output:
	// Wrote 2044 bytes
}

func ExampleCodec() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "speech.wav")

	if err := (wav.Codec{}).Encode(path, 16000, []int16{-32768, 0, 32767}); err != nil {
		fmt.Println(err)
		return
	}

	rate, samples, err := wav.Codec{}.Decode(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(rate, samples)
	// Output:
	// 16000 [-32768 0 32767]
}

func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("this is not a WAV file")))

	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	fmt.Println(errors.Is(err, audio.ErrUnsupported))
	// Output:
	// true
	// true
}
