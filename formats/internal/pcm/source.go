// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM readers of github.com/go-audio
// (wav and aiff) to audio.Source.
package pcm

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/soundfx/audio"
)

// Reader is the part of wav.Decoder and aiff.Decoder used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM and normalizes it to float32.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	// 8-bit WAV is unsigned with a 128 midpoint; 8-bit AIFF is signed
	unsigned8 bool

	intBuf *goaudio.IntBuffer
}

// Options describe the stream behind a Reader.
type Options struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int64
	Unsigned8  bool
}

func NewSource(dec Reader, opts Options) *Source {
	return &Source{
		dec:        dec,
		sampleRate: opts.SampleRate,
		channels:   opts.Channels,
		bitDepth:   opts.BitDepth,
		frames:     opts.Frames,
		unsigned8:  opts.Unsigned8,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) Frames() int64 {
	if s.frames <= 0 {
		return -1
	}
	return s.frames
}

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.bitDepth == 8 && s.unsigned8 {
			v -= 128
		}
		dst[i] = audio.IntToFloat32(v, s.bitDepth)
	}

	// a short read with no error is the end of the data chunk
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
