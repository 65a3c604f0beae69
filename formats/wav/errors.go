// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/audiofile/audio"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", audio.ErrUnsupported)
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV layout", audio.ErrUnsupported)
	ErrUnsupportedBitDepth  = fmt.Errorf("%w: unsupported WAV bit depth", audio.ErrUnsupported)

	// ErrNotMono16 is returned by Codec.Decode for anything but mono
	// 16-bit PCM.
	ErrNotMono16 = fmt.Errorf("%w: WAV is not mono 16-bit PCM", audio.ErrUnsupported)

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
