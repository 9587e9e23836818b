// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is returned when no registered decoder matches a file.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrEmptySource is returned when a source yields no samples at all.
	ErrEmptySource = errors.New("audio source has no samples")

	ErrInvalidChannels = errors.New("channel count must be positive")
)
