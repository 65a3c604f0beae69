// SPDX-License-Identifier: EPL-2.0

// Package native converts and probes audio in process, without external
// tools.
//
// Input is routed by file extension to a decoder from an audio.Registry.
// NewRegistry binds WAV, MP3, Ogg Vorbis, AIFF and FLAC. Conversion mixes
// every channel down to mono, resamples to the target rate and writes a
// 16-bit PCM WAV file.
package native
