// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrInvalidSpec     = errors.New("invalid device spec")
	ErrChannelMismatch = errors.New("source channel count does not match device")
)
