// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	ErrInvalidCapacity = errors.New("capacity cannot be negative")
	ErrInvalidRange    = errors.New("slice range outside valid samples")
)
