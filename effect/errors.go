// SPDX-License-Identifier: EPL-2.0

package effect

import "errors"

var (
	// ErrUnsupportedFeature is returned by the builders when the device
	// layout or sample format has no matching effect routine.
	ErrUnsupportedFeature = errors.New("unsupported feature")
)
