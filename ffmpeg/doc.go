// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg converts and probes media files by running the ffmpeg and
// ffprobe command line tools.
//
// A binary that cannot be found or started yields an error wrapping
// audio.ErrUnavailable. A binary that runs and exits non-zero yields
// audio.ErrUnsupported, with the tail of its stderr attached. Output that
// cannot be understood yields audio.ErrParseFailed.
//
// Every command runs under the caller's context; cancelling it kills the
// child process.
package ffmpeg
