// SPDX-License-Identifier: EPL-2.0

package output

import (
	"sync"

	"github.com/ik5/soundfx/audio"
)

// sourceQueue feeds one sink. Sources play back to back. Until the sink
// is detached an empty queue yields silence; afterwards it ends as soon
// as it runs dry.
type sourceQueue struct {
	mu       sync.Mutex
	rate     int
	channels int
	sources  []audio.Source
	detached bool
}

func newSourceQueue(rate, channels int) *sourceQueue {
	return &sourceQueue{rate: rate, channels: channels}
}

func (q *sourceQueue) push(src audio.Source) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.detached {
		return ErrSinkDetached
	}

	q.sources = append(q.sources, audio.Adapt(src, q.rate, q.channels))
	return nil
}

func (q *sourceQueue) detach() {
	q.mu.Lock()
	q.detached = true
	q.mu.Unlock()
}

// fill writes up to len(dst) samples. len(dst) must be a multiple of the
// channel count. ok is false once the queue is detached and drained.
func (q *sourceQueue) fill(dst []float32) (n int, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for n < len(dst) && len(q.sources) > 0 {
		m, err := q.sources[0].ReadSamples(dst[n:])
		n += m

		if err != nil {
			q.sources[0].Close()
			q.sources[0] = nil
			q.sources = q.sources[1:]
			continue
		}
		if m == 0 {
			break
		}
	}

	if n < len(dst) {
		if q.detached && len(q.sources) == 0 {
			// a partial frame is not playable
			n -= n % q.channels
			return n, n > 0
		}
		clear(dst[n:])
		n = len(dst)
	}

	return n, true
}

func (q *sourceQueue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.sources)
}
