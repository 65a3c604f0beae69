// SPDX-License-Identifier: EPL-2.0

package audiofile

import "errors"

// Every error returned by AudioFile wraps exactly one of these, together
// with the underlying cause when there is one.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrSourceUnreadable = errors.New("audio source cannot be read")

	// ErrNotInitialized means samples were requested from a handle with
	// neither samples nor a source path.
	ErrNotInitialized = errors.New("audio file not initialized")

	// ErrProbeUnavailable and ErrConverterUnavailable mean the backend could
	// not be invoked at all, usually a missing binary.
	ErrProbeUnavailable     = errors.New("audio prober unavailable")
	ErrConverterUnavailable = errors.New("audio converter unavailable")

	// ErrUnsupportedFormat means the backend ran but rejected the input.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	ErrWriteFailed = errors.New("cannot write audio file")
)
