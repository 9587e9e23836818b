// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	// ErrDisconnected is returned when sending on a queue whose worker
	// has retired.
	ErrDisconnected = errors.New("playback queue disconnected")

	// ErrNoDecoder is returned when no registered decoder matches a file.
	ErrNoDecoder = errors.New("no decoder for file")
)
