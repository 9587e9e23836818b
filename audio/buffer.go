// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is a fully decoded PCM sequence. It is immutable after
// NewBuffer returns, so any number of clones may read it concurrently.
type Buffer struct {
	sampleRate int
	channels   int
	samples    []float32 // interleaved
}

// NewBuffer drains src into memory and closes it.
func NewBuffer(src Source) (*Buffer, error) {
	defer src.Close()

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	chunk := src.BufSize()
	if chunk <= 0 {
		chunk = 4096
	}
	// keep reads frame aligned
	chunk -= chunk % channels
	if chunk == 0 {
		chunk = channels
	}

	var samples []float32
	if sized, ok := src.(Sized); ok {
		if frames := sized.Frames(); frames > 0 {
			samples = make([]float32, 0, frames*int64(channels))
		}
	}

	for {
		if cap(samples)-len(samples) < chunk {
			grown := make([]float32, len(samples), 2*cap(samples)+chunk)
			copy(grown, samples)
			samples = grown
		}

		n, err := src.ReadSamples(samples[len(samples) : len(samples)+chunk])
		samples = samples[:len(samples)+n]

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%channels]
	if len(samples) == 0 {
		return nil, ErrEmptySource
	}

	return &Buffer{
		sampleRate: src.SampleRate(),
		channels:   channels,
		samples:    samples,
	}, nil
}

// NewBufferFromSamples wraps already interleaved samples. The slice is
// owned by the Buffer afterwards.
func NewBufferFromSamples(sampleRate, channels int, samples []float32) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}
	return &Buffer{sampleRate: sampleRate, channels: channels, samples: samples}, nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }

// Frames is the length in samples per channel.
func (b *Buffer) Frames() int { return len(b.samples) / b.channels }

// Duration is the playback length at the buffer's own sample rate.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.sampleRate)
}

// Size is the in-memory footprint of the samples in bytes.
func (b *Buffer) Size() int { return len(b.samples) * 4 }

// Clone returns a new Source positioned at the start of the buffer.
// It does not copy samples.
func (b *Buffer) Clone() *BufferSource {
	return &BufferSource{buf: b}
}

// BufferSource reads a Buffer. Each clone has its own cursor and must
// not be shared between goroutines.
type BufferSource struct {
	buf *Buffer
	pos int
}

func (s *BufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *BufferSource) Channels() int   { return s.buf.channels }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }
func (s *BufferSource) Frames() int64   { return int64(s.buf.Frames()) }

// Buffer returns the shared buffer behind this source.
func (s *BufferSource) Buffer() *Buffer { return s.buf }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.samples) {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := copy(dst, s.buf.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.samples) {
		return n, io.EOF
	}
	return n, nil
}
