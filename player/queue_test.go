// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := newQueue()
	for i := range 5 {
		if err := q.send(fmt.Sprint(i)); err != nil {
			t.Fatalf("send() error = %v", err)
		}
	}

	for i := range 5 {
		got, ok := q.recv(time.Second)
		if !ok || got != fmt.Sprint(i) {
			t.Fatalf("recv() = %q, %v, want %q", got, ok, fmt.Sprint(i))
		}
	}
}

func TestQueue_RecvTimeout(t *testing.T) {
	t.Parallel()

	q := newQueue()
	start := time.Now()

	if _, ok := q.recv(20 * time.Millisecond); ok {
		t.Fatal("recv() on an empty queue returned an item")
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("recv() returned after %v, want >= 20ms", elapsed)
	}
}

func TestQueue_RecvWakesOnSend(t *testing.T) {
	t.Parallel()

	q := newQueue()
	go func() {
		time.Sleep(10 * time.Millisecond)
		q.send("late")
	}()

	got, ok := q.recv(5 * time.Second)
	if !ok || got != "late" {
		t.Errorf("recv() = %q, %v, want late", got, ok)
	}
}

func TestQueue_Close(t *testing.T) {
	t.Parallel()

	q := newQueue()
	q.send("pending")

	if closed, _ := q.close(false); closed {
		t.Fatal("close(false) closed a queue with pending items")
	}
	if q.disconnected() {
		t.Fatal("queue disconnected after refused close")
	}

	closed, dropped := q.close(true)
	if !closed || dropped != 1 {
		t.Errorf("close(true) = %v, %d, want true, 1", closed, dropped)
	}
	if !q.disconnected() {
		t.Error("queue still connected after close")
	}
	if err := q.send("x"); !errors.Is(err, ErrDisconnected) {
		t.Errorf("send() after close error = %v, want ErrDisconnected", err)
	}
	if _, ok := q.recv(time.Millisecond); ok {
		t.Error("recv() after close returned an item")
	}
}

func TestQueue_ClosedPlaceholder(t *testing.T) {
	t.Parallel()

	if !newClosedQueue().disconnected() {
		t.Error("placeholder queue is connected")
	}
}

func TestQueue_ManyProducers(t *testing.T) {
	t.Parallel()

	q := newQueue()

	var wg sync.WaitGroup
	for p := range 8 {
		wg.Go(func() {
			for i := range 100 {
				q.send(fmt.Sprintf("%d-%d", p, i))
			}
		})
	}

	seen := make(map[string]bool)
	last := make(map[int]int)
	for len(seen) < 800 {
		item, ok := q.recv(5 * time.Second)
		if !ok {
			t.Fatalf("recv() timed out after %d items", len(seen))
		}
		seen[item] = true

		var p, i int
		fmt.Sscanf(item, "%d-%d", &p, &i)
		if prev, ok := last[p]; ok && i <= prev {
			t.Errorf("producer %d: item %d after %d", p, i, prev)
		}
		last[p] = i
	}
	wg.Wait()

	if q.len() != 0 {
		t.Errorf("len() = %d after draining", q.len())
	}
}

func BenchmarkQueue_SendRecv(b *testing.B) {
	q := newQueue()

	b.ReportAllocs()
	for b.Loop() {
		q.send("sounds/click.wav")
		q.recv(time.Second)
	}
}
