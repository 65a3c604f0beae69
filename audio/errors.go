// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrUnavailable means an external tool or backend could not be invoked
	// at all, usually a missing binary.
	ErrUnavailable = errors.New("audio backend unavailable")
	// ErrUnsupported means the backend ran but rejected the input.
	ErrUnsupported = errors.New("unsupported audio input")
	// ErrParseFailed means the backend output could not be understood.
	ErrParseFailed = errors.New("cannot parse audio backend output")
)
