// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ik5/soundfx/audio"
	"github.com/spf13/afero"
)

// Cache maps submitted paths to decoded buffers. Entries are added on
// first use and live as long as the cache.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*audio.Buffer

	fs       afero.Fs
	registry *audio.Registry
	fallback string
	log      *log.Logger
}

func newCache(cfg Config) *Cache {
	return &Cache{
		entries:  make(map[string]*audio.Buffer),
		fs:       cfg.Fs,
		registry: cfg.Registry,
		fallback: cfg.FallbackName,
		log:      cfg.Logger,
	}
}

// Get returns a fresh source over the buffer for path, loading it on a
// miss. A path that cannot be opened is replaced by the fallback file in
// the same directory; the result is still stored under path.
func (c *Cache) Get(path string) (audio.Source, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if buf, ok := c.entries[path]; ok {
		return buf.Clone(), nil
	}

	buf, err := c.load(path)
	if err != nil {
		return nil, err
	}
	c.entries[path] = buf

	return buf.Clone(), nil
}

func (c *Cache) load(path string) (*audio.Buffer, error) {
	name := path

	f, err := c.fs.Open(name)
	if err != nil {
		name = filepath.Join(filepath.Dir(path), c.fallback)
		c.log.Debug("using fallback", "path", path, "fallback", name, "err", err)

		f, err = c.fs.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening fallback for %q: %w", path, err)
		}
	}

	data, err := afero.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	header := data[:min(len(data), audio.SniffLen)]
	dec, format, err := c.registry.ForFile(name, header)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrNoDecoder, name, err)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", name, format, err)
	}

	buf, err := audio.NewBuffer(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", name, format, err)
	}

	c.log.Debug("cached", "path", path, "format", format,
		"rate", buf.SampleRate(), "channels", buf.Channels(), "duration", buf.Duration())

	return buf, nil
}

// Len is the number of cached paths.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Bytes is the memory held by cached samples. A buffer shared by
// several paths through the fallback is counted once per path.
func (c *Cache) Bytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, buf := range c.entries {
		total += buf.Size()
	}
	return total
}
