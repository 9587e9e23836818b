// SPDX-License-Identifier: EPL-2.0

package player

import (
	"sync"
	"time"
)

// queue is an unbounded FIFO of paths with a single consumer. Once
// closed it rejects sends; the consumer closes it when it retires.
type queue struct {
	mu     sync.Mutex
	items  []string
	closed bool
	// ready holds a token while items is non-empty
	ready chan struct{}
}

func newQueue() *queue {
	return &queue{ready: make(chan struct{}, 1)}
}

// newClosedQueue is the placeholder held before the first worker exists.
func newClosedQueue() *queue {
	q := newQueue()
	q.closed = true
	return q
}

func (q *queue) send(path string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrDisconnected
	}

	q.items = append(q.items, path)
	q.signal()

	return nil
}

// recv waits up to timeout for the next path.
func (q *queue) recv(timeout time.Duration) (string, bool) {
	if path, ok := q.pop(); ok {
		return path, true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-q.ready:
			if path, ok := q.pop(); ok {
				return path, true
			}
		case <-timer.C:
			return q.pop()
		}
	}
}

func (q *queue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return "", false
	}

	path := q.items[0]
	q.items[0] = ""
	q.items = q.items[1:]
	if len(q.items) > 0 {
		q.signal()
	}

	return path, true
}

// signal must be called with mu held.
func (q *queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// close disconnects the queue. Unless force is set it refuses while
// items are pending. It returns whether the queue is now closed and how
// many pending items were dropped.
func (q *queue) close(force bool) (bool, int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return true, 0
	}
	if len(q.items) > 0 && !force {
		return false, 0
	}

	dropped := len(q.items)
	q.items = nil
	q.closed = true

	return true, dropped
}

func (q *queue) disconnected() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.closed
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
