// SPDX-License-Identifier: EPL-2.0

package soundfx

import (
	"sync"

	"github.com/ik5/soundfx/output"
	"github.com/ik5/soundfx/player"
)

var defaultDispatcher = sync.OnceValue(func() *player.Dispatcher {
	return player.New(output.NewOto(output.DefaultConfig()), player.DefaultConfig())
})

// Play queues path on the default dispatcher. It never blocks on
// decoding or on the device.
func Play(path string) {
	defaultDispatcher().Play(path)
}

// Default returns the dispatcher behind Play, creating it on first use.
// No device is opened until the first Play.
func Default() *player.Dispatcher {
	return defaultDispatcher()
}
