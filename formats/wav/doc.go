// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder turns a WAV stream into an audio.Source. PCM at 8, 16, 24 and 32
// bits is accepted with any channel count:
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Samples come out as float32 in [-1.0, 1.0).
//
// # Encoding
//
// WriteWAV16 streams a mono 16-bit file to any io.Writer without seeking:
//
//	err := wav.WriteWAV16(w, 16000, samples)
//
// # Whole Files
//
// Codec works on paths and handles only mono 16-bit PCM, the canonical
// format of an AudioFile. Encode writes a hidden sibling file and renames
// it over the destination once everything is flushed.
//
// # Errors
//
// ErrNotWavFile, ErrUnsupportedWavLayout, ErrUnsupportedBitDepth and
// ErrNotMono16 all wrap audio.ErrUnsupported.
package wav
