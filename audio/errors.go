// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrUnsupportedLayout = errors.New("unsupported channel layout")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
