// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ik5/soundfx/output"
)

// worker owns one output stream and plays the requests of one queue
// in order.
type worker struct {
	d   *Dispatcher
	q   *queue
	log *log.Logger
}

func (w *worker) run() {
	var stream output.Stream

	defer func() {
		if r := recover(); r != nil {
			w.log.Error("worker panicked", "panic", r)
			w.d.retire(w.q, true)
		}
		if stream == nil {
			return
		}
		if err := stream.Close(); err != nil {
			w.log.Warn("closing output", "err", err)
		}
	}()

	stream, err := w.d.out.Open()
	if err != nil {
		w.log.Error("opening output", "err", err)
		w.d.retire(w.q, true)
		return
	}

	for {
		path, ok := w.q.recv(w.d.cfg.IdleTimeout)
		if !ok {
			time.Sleep(w.d.cfg.DrainDelay)
			if w.d.retire(w.q, false) {
				w.log.Debug("worker retired", "idle", w.d.cfg.IdleTimeout)
				return
			}
			continue
		}

		if err := w.serve(stream, path); err != nil {
			w.d.failed.Add(1)
			w.log.Error("playback failed", "path", path, "err", err)
			w.d.retire(w.q, true)
			return
		}
		w.d.played.Add(1)
	}
}

func (w *worker) serve(stream output.Stream, path string) error {
	src, err := w.d.cache.Get(path)
	if err != nil {
		return err
	}

	sink, err := stream.NewSink()
	if err != nil {
		src.Close()
		return fmt.Errorf("creating sink: %w", err)
	}

	if err := sink.Append(src); err != nil {
		sink.Detach()
		return fmt.Errorf("starting playback: %w", err)
	}
	sink.Detach()

	w.log.Debug("playing", "path", path)

	return nil
}
