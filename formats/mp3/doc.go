// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so the Source reports two channels
// even for mono files; the two channels then carry the same signal.
//
//	src, err := mp3.Decoder{}.Decode(f)
//
// A trailing partial frame at the end of the stream is dropped.
package mp3
