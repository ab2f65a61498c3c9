// SPDX-License-Identifier: EPL-2.0

package scene

import "errors"

var (
	ErrInvalidScene  = errors.New("invalid scene")
	ErrUnknownEffect = errors.New("unknown effect type")
)
