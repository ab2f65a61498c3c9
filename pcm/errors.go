// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrUnsupportedFormat is returned by CodecFor for formats no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrUnknownFormatName is returned by ParseSampleFormat.
	ErrUnknownFormatName = errors.New("unknown sample format name")
)
