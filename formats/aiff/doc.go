// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
// PCM at 8, 16, 24 and 32 bits is accepted with any channel count. Samples
// are big endian on disk and come out as float32 in [-1.0, 1.0).
//
// All errors wrap audio.ErrUnsupported.
package aiff
