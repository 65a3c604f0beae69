// SPDX-License-Identifier: EPL-2.0

// Package audiofile keeps the audio of a media file in memory as mono
// samples in [-1, 1] and edits them.
//
// An AudioFile is created around a path and reads nothing until it is
// asked to. ReadProperties asks a Prober for the duration, codec, sample
// rate and channel count without decoding. The first operation that needs
// samples loads them: files that are not already mono 16-bit PCM WAV at the
// configured rate are converted into a temporary file first, which is
// removed once the samples are read.
//
//	f := audiofile.New("speech.mp3", audiofile.WithConfig(cfg))
//	if err := f.Trim(ctx, &begin, &length); err != nil {
//		return err
//	}
//	if err := f.Reverse(ctx); err != nil {
//		return err
//	}
//	err := f.Write(ctx, "speech-reversed.wav")
//
// # Backends
//
// Conversion and probing run through ffmpeg and ffprobe by default. With
// config.BackendNative the native package decodes WAV, AIFF, MP3, Ogg
// Vorbis and FLAC in process instead.
//
// # Buffers built in memory
//
// New("") gives a handle with no source. Samples are added with
// AddSamples and the rate is set with SetSampleRate before Write.
//
// # Errors
//
// Every failure wraps one of the Err* sentinels of this package, so callers
// branch with errors.Is. The cause stays in the chain.
//
// An AudioFile is not safe for concurrent use.
package audiofile
