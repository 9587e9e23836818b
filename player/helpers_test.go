// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/formats"
	"github.com/ik5/soundfx/formats/wav"
	"github.com/spf13/afero"
)

const fixtureRate = 8000

// countingFs records every Open.
type countingFs struct {
	afero.Fs

	mu    sync.Mutex
	opens map[string]int
}

func newCountingFs() *countingFs {
	return &countingFs{Fs: afero.NewMemMapFs(), opens: make(map[string]int)}
}

func (c *countingFs) Open(name string) (afero.File, error) {
	c.mu.Lock()
	c.opens[name]++
	c.mu.Unlock()

	return c.Fs.Open(name)
}

func (c *countingFs) Opens(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.opens[name]
}

func (c *countingFs) TotalOpens() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, n := range c.opens {
		total += n
	}
	return total
}

// writeTone stores a mono WAV whose samples all equal value.
func writeTone(t testing.TB, fs afero.Fs, name string, value int16, d time.Duration) {
	t.Helper()

	samples := make([]int16, max(int(d*fixtureRate/time.Second), 1))
	for i := range samples {
		samples[i] = value
	}

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, fixtureRate, 1, samples); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, name, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// slowDecoder decodes WAV data after a delay.
type slowDecoder struct {
	delay time.Duration
}

func (s slowDecoder) Decode(r io.Reader) (audio.Source, error) {
	time.Sleep(s.delay)
	return wav.Decoder{}.Decode(r)
}

type panicDecoder struct{}

func (panicDecoder) Decode(io.Reader) (audio.Source, error) {
	panic("decoder exploded")
}

func testConfig(fs afero.Fs) Config {
	reg := formats.NewRegistry()
	// fixtures are WAV data whatever their extension
	reg.Register("mp3", wav.Decoder{})
	reg.Register("slow", slowDecoder{delay: 200 * time.Millisecond})
	reg.Register("boom", panicDecoder{})

	return Config{
		IdleTimeout:  5 * time.Second,
		DrainDelay:   time.Millisecond,
		FallbackName: "A.mp3",
		Fs:           fs,
		Registry:     reg,
		Logger:       log.New(io.Discard),
	}
}

func waitFor(t testing.TB, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func first(value int16) float32 {
	return audio.Int16ToFloat32(value)
}
