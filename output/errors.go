// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	// ErrNotInitialized is returned by Open when the device could not be set up.
	ErrNotInitialized = errors.New("audio device not initialized")

	ErrSinkDetached = errors.New("sink already detached")
	ErrStreamClosed = errors.New("stream closed")
)
