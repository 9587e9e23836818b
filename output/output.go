// SPDX-License-Identifier: EPL-2.0

package output

import (
	"time"

	"github.com/ik5/soundfx/audio"
)

// Output opens streams on an audio device.
type Output interface {
	Open() (Stream, error)
}

// Monitor is implemented by outputs that can tell whether sound is
// still playing.
type Monitor interface {
	// Busy reports whether any stream or sink holds the device.
	Busy() bool
}

// Stream is an open handle on the device. Closing it does not cut off
// sinks that are still playing.
type Stream interface {
	NewSink() (Sink, error)
	Close() error
}

// Sink plays appended sources in order. After Detach no more sources
// may be appended; whatever is queued still plays to the end.
type Sink interface {
	Append(src audio.Source) error
	Detach()
}

// Config describes the device format. Sources are converted to it on
// the fly.
type Config struct {
	SampleRate int
	Channels   int
	// BufferSize is the device latency.
	BufferSize time.Duration
}

func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Channels:   2,
		BufferSize: 100 * time.Millisecond,
	}
}
