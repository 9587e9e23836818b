// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/soundfx/audio"
)

// oto allows a single context per process, so the first Config used
// to open a stream decides the device format.
var otoShared struct {
	once sync.Once
	dev  *device
	ctx  *oto.Context
	cfg  Config
}

func otoDevice(cfg Config) *device {
	otoShared.once.Do(func() {
		otoShared.cfg = cfg
		otoShared.dev = &device{
			init: func() error {
				ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
					SampleRate:   cfg.SampleRate,
					ChannelCount: cfg.Channels,
					Format:       oto.FormatSignedInt16LE,
					BufferSize:   cfg.BufferSize,
				})
				if err != nil {
					return err
				}
				<-ready

				otoShared.ctx = ctx
				return nil
			},
			resume:  func() error { return otoShared.ctx.Resume() },
			suspend: func() error { return otoShared.ctx.Suspend() },
		}
	})
	return otoShared.dev
}

// Oto is the default Output, backed by github.com/ebitengine/oto/v3.
type Oto struct {
	cfg Config
}

func NewOto(cfg Config) *Oto {
	return &Oto{cfg: cfg}
}

func (o *Oto) Open() (Stream, error) {
	dev := otoDevice(o.cfg)
	if err := dev.acquire(); err != nil {
		return nil, err
	}

	return &otoStream{dev: dev, ctx: otoShared.ctx, cfg: otoShared.cfg}, nil
}

func (o *Oto) Busy() bool {
	return otoDevice(o.cfg).active() > 0
}

type otoStream struct {
	dev *device
	ctx *oto.Context
	cfg Config

	mu     sync.Mutex
	closed bool
}

func (s *otoStream) NewSink() (Sink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStreamClosed
	}
	if err := s.dev.acquire(); err != nil {
		return nil, err
	}

	return &otoSink{
		dev:    s.dev,
		ctx:    s.ctx,
		reader: newPCMReader(newSourceQueue(s.cfg.SampleRate, s.cfg.Channels)),
	}, nil
}

func (s *otoStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return s.dev.release()
}

type otoSink struct {
	dev    *device
	ctx    *oto.Context
	reader *pcmReader

	mu     sync.Mutex
	player *oto.Player
}

func (s *otoSink) Append(src audio.Source) error {
	if err := s.reader.queue.push(src); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player == nil {
		s.player = s.ctx.NewPlayer(s.reader)
	}
	if !s.player.IsPlaying() {
		s.player.Play()
	}

	return nil
}

func (s *otoSink) Detach() {
	s.reader.queue.detach()

	s.mu.Lock()
	p := s.player
	s.mu.Unlock()

	if p == nil {
		s.dev.release()
		return
	}

	go func() {
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
		s.dev.release()
	}()
}

// pcmReader renders a sourceQueue as signed 16-bit little-endian PCM.
type pcmReader struct {
	queue *sourceQueue
	buf   []float32
}

func newPCMReader(q *sourceQueue) *pcmReader {
	return &pcmReader{queue: q}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	samples := len(p) / 2
	samples -= samples % r.queue.channels
	if samples == 0 {
		return 0, nil
	}

	if cap(r.buf) < samples {
		r.buf = make([]float32, samples)
	}
	buf := r.buf[:samples]

	n, ok := r.queue.fill(buf)
	if !ok {
		return 0, io.EOF
	}

	for i, x := range buf[:n] {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(audio.Float32ToInt16(x)))
	}

	return n * 2, nil
}
