// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/ik5/soundfx/output"
)

// Dispatcher accepts play requests and hands them to a background
// worker. The worker is started on demand and retires on its own after
// a quiet period; the next Play starts a new one.
type Dispatcher struct {
	cfg   Config
	out   output.Output
	cache *Cache
	log   *log.Logger

	// mu guards queue. It is held across the liveness check, the respawn
	// and the send, and by a worker while it retires.
	mu    sync.Mutex
	queue *queue

	spawned atomic.Int64
	retired atomic.Int64
	played  atomic.Int64
	failed  atomic.Int64
	live    atomic.Int32
}

// Stats is a snapshot of a Dispatcher's counters.
type Stats struct {
	Spawned int64 // workers started
	Retired int64 // workers that exited
	Played  int64 // requests that reached a sink
	Failed  int64 // requests that killed their worker
	Live    int   // workers currently running
	Pending int   // requests waiting in the queue
	Cached  int   // entries in the sample cache
}

func New(out output.Output, cfg Config) *Dispatcher {
	cfg = cfg.withDefaults()

	return &Dispatcher{
		cfg:   cfg,
		out:   out,
		cache: newCache(cfg),
		log:   cfg.Logger,
		queue: newClosedQueue(),
	}
}

// Play queues path for playback and returns at once. Failures are
// logged by the worker and never reported to the caller.
func (d *Dispatcher) Play(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.queue.disconnected() {
		d.queue = newQueue()
		d.spawn(d.queue)
	}

	if err := d.queue.send(path); err != nil {
		panic(fmt.Errorf("queueing %q on a live worker: %w", path, err))
	}
}

// spawn must be called with mu held.
func (d *Dispatcher) spawn(q *queue) {
	id := d.spawned.Add(1)
	d.live.Add(1)

	w := &worker{
		d:   d,
		q:   q,
		log: d.log.With("worker", id),
	}
	w.log.Debug("worker started")

	go w.run()
}

// retire disconnects q on behalf of its worker. Without force it only
// succeeds while q is empty, so nothing sent during the drain is lost.
func (d *Dispatcher) retire(q *queue, force bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if q.disconnected() {
		return true
	}

	closed, dropped := q.close(force)
	if !closed {
		return false
	}
	if dropped > 0 {
		d.log.Warn("dropped queued sounds", "count", dropped)
	}

	d.live.Add(-1)
	d.retired.Add(1)

	return true
}

func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	pending := d.queue.len()
	d.mu.Unlock()

	return Stats{
		Spawned: d.spawned.Load(),
		Retired: d.retired.Load(),
		Played:  d.played.Load(),
		Failed:  d.failed.Load(),
		Live:    int(d.live.Load()),
		Pending: pending,
		Cached:  d.cache.Len(),
	}
}

// Cache exposes the sample cache, mostly for inspection.
func (d *Dispatcher) Cache() *Cache {
	return d.cache
}
