// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/audiofile/audio"
)

var (
	ErrNotAiffFile           = fmt.Errorf("%w: not an AIFF file", audio.ErrUnsupported)
	ErrUnsupportedBitDepth   = fmt.Errorf("%w: unsupported AIFF bit depth", audio.ErrUnsupported)
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", audio.ErrUnsupported)
)
