// SPDX-License-Identifier: EPL-2.0

package output

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/ik5/soundfx/audio"
)

// the speaker mixer is always stereo
const beepChannels = 2

var beepShared struct {
	once sync.Once
	dev  *device
	cfg  Config
}

func beepDevice(cfg Config) *device {
	beepShared.once.Do(func() {
		beepShared.cfg = cfg
		rate := beep.SampleRate(cfg.SampleRate)
		beepShared.dev = &device{
			init: func() error {
				return speaker.Init(rate, rate.N(cfg.BufferSize))
			},
			resume:  speaker.Resume,
			suspend: speaker.Suspend,
		}
	})
	return beepShared.dev
}

// Beep is an Output running on the github.com/gopxl/beep speaker mixer.
type Beep struct {
	cfg Config
}

func NewBeep(cfg Config) *Beep {
	return &Beep{cfg: cfg}
}

func (b *Beep) Open() (Stream, error) {
	dev := beepDevice(b.cfg)
	if err := dev.acquire(); err != nil {
		return nil, err
	}

	return &beepStream{dev: dev, rate: beepShared.cfg.SampleRate}, nil
}

func (b *Beep) Busy() bool {
	return beepDevice(b.cfg).active() > 0
}

type beepStream struct {
	dev  *device
	rate int

	mu     sync.Mutex
	closed bool
}

func (s *beepStream) NewSink() (Sink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStreamClosed
	}
	if err := s.dev.acquire(); err != nil {
		return nil, err
	}

	return &beepSink{
		dev:      s.dev,
		streamer: newQueueStreamer(newSourceQueue(s.rate, beepChannels)),
	}, nil
}

func (s *beepStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return s.dev.release()
}

type beepSink struct {
	dev      *device
	streamer *queueStreamer

	once sync.Once
}

func (s *beepSink) Append(src audio.Source) error {
	if err := s.streamer.queue.push(src); err != nil {
		return err
	}

	s.once.Do(func() {
		// the callback runs under the speaker lock
		speaker.Play(beep.Seq(s.streamer, beep.Callback(func() {
			go s.dev.release()
		})))
	})

	return nil
}

func (s *beepSink) Detach() {
	s.streamer.queue.detach()

	started := true
	s.once.Do(func() { started = false })
	if !started {
		s.dev.release()
	}
}

// queueStreamer adapts a stereo sourceQueue to beep.Streamer.
type queueStreamer struct {
	queue *sourceQueue
	buf   []float32
}

func newQueueStreamer(q *sourceQueue) *queueStreamer {
	return &queueStreamer{queue: q}
}

func (s *queueStreamer) Stream(samples [][2]float64) (int, bool) {
	want := len(samples) * beepChannels
	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	buf := s.buf[:want]

	n, ok := s.queue.fill(buf)
	if !ok {
		return 0, false
	}

	frames := n / beepChannels
	for i := range frames {
		samples[i][0] = float64(buf[i*2])
		samples[i][1] = float64(buf[i*2+1])
	}

	return frames, true
}

func (s *queueStreamer) Err() error { return nil }
