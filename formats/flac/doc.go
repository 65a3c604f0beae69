// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are parsed one at a time and interleaved into the caller's buffer,
// so memory use stays at one block regardless of the file length.
package flac
