// SPDX-License-Identifier: EPL-2.0

// Package outputtest provides a recording output.Output for tests that
// need a device without touching sound hardware.
package outputtest

import (
	"sync"
	"time"

	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/output"
)

// SinkRecord describes one sink created on an Output.
type SinkRecord struct {
	Seq        int // creation order, from 0
	Stream     int // stream that created it, from 0
	SampleRate int
	Channels   int
	Samples    int
	// First is the first sample played, handy to tell fixtures apart.
	First    float32
	Detached bool

	Started time.Time
	Ended   time.Time
	Done    bool
}

// Output is an output.Output that plays nothing. Every appended source
// is drained in real time on its own goroutine and its lifeline is
// recorded.
type Output struct {
	// OpenErr makes Open fail.
	OpenErr error
	// AppendErr makes Sink.Append fail.
	AppendErr error

	mu      sync.Mutex
	opens   int
	closed  int
	sinks   []*SinkRecord
	streams int
}

var _ output.Output = (*Output)(nil)

func NewOutput() *Output {
	return &Output{}
}

func (o *Output) Open() (output.Stream, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.opens++
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}

	id := o.streams
	o.streams++
	return &stream{out: o, id: id}, nil
}

// Opens is the number of Open calls, failed ones included.
func (o *Output) Opens() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opens
}

// OpenStreams is the number of streams opened and not yet closed.
func (o *Output) OpenStreams() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.streams - o.closed
}

// Sinks returns a snapshot of every sink created so far.
func (o *Output) Sinks() []SinkRecord {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]SinkRecord, len(o.sinks))
	for i, s := range o.sinks {
		out[i] = *s
	}
	return out
}

// WaitSinks blocks until n sinks have finished playing or timeout passes.
func (o *Output) WaitSinks(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		done := 0
		for _, s := range o.Sinks() {
			if s.Done {
				done++
			}
		}
		if done >= n {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

type stream struct {
	out *Output
	id  int

	closed bool
}

func (s *stream) NewSink() (output.Sink, error) {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()

	if s.closed {
		return nil, output.ErrStreamClosed
	}

	rec := &SinkRecord{Seq: len(s.out.sinks), Stream: s.id}
	s.out.sinks = append(s.out.sinks, rec)

	return &sink{out: s.out, rec: rec}, nil
}

func (s *stream) Close() error {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()

	if !s.closed {
		s.closed = true
		s.out.closed++
	}
	return nil
}

type sink struct {
	out *Output
	rec *SinkRecord
}

func (s *sink) Append(src audio.Source) error {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()

	if s.out.AppendErr != nil {
		return s.out.AppendErr
	}
	if s.rec.Detached {
		return output.ErrSinkDetached
	}

	s.rec.SampleRate = src.SampleRate()
	s.rec.Channels = src.Channels()
	s.rec.Started = time.Now()

	go s.play(src)
	return nil
}

func (s *sink) Detach() {
	s.out.mu.Lock()
	s.rec.Detached = true
	s.out.mu.Unlock()
}

func (s *sink) play(src audio.Source) {
	defer src.Close()

	var (
		total int
		first float32
		buf   = make([]float32, 1024)
	)
	for {
		n, err := src.ReadSamples(buf)
		if total == 0 && n > 0 {
			first = buf[0]
		}
		total += n
		if err != nil {
			break
		}
	}

	if frames := total / max(src.Channels(), 1); src.SampleRate() > 0 {
		time.Sleep(time.Duration(frames) * time.Second / time.Duration(src.SampleRate()))
	}

	s.out.mu.Lock()
	defer s.out.mu.Unlock()

	s.rec.Samples = total
	s.rec.First = first
	s.rec.Ended = time.Now()
	s.rec.Done = true
}
