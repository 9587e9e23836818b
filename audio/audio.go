// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the preferred number of samples per ReadSamples call.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Sized is implemented by sources that know their total length up front.
// Frames returns the number of frames (samples per channel), or a
// negative value when unknown.
type Sized interface {
	Frames() int64
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Keys double as file extensions, so a key may be registered more than
// once under aliases ("aif" and "aiff").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Formats returns the registered format keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	return keys
}

// ForFile picks a decoder for the named file. The extension is tried
// first; when it is missing or unregistered, header is sniffed.
// It returns the format key that matched.
func (r *Registry) ForFile(name string, header []byte) (Decoder, string, error) {
	if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" {
		if d, ok := r.Get(ext); ok {
			return d, strings.ToLower(ext), nil
		}
	}

	format := Sniff(header)
	if format == "" {
		return nil, "", ErrUnknownFormat
	}

	d, ok := r.Get(format)
	if !ok {
		return nil, format, ErrUnknownFormat
	}
	return d, format, nil
}
