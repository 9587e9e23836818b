// SPDX-License-Identifier: EPL-2.0

package player

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/formats"
	"github.com/spf13/afero"
)

// Config tunes a Dispatcher. Zero fields are filled from DefaultConfig.
type Config struct {
	// IdleTimeout is how long the worker waits for a request before it
	// retires and releases the output device.
	IdleTimeout time.Duration
	// DrainDelay is slept after the idle timeout, before retiring. A
	// negative value disables it.
	DrainDelay time.Duration
	// FallbackName replaces the last path element of a file that cannot
	// be opened.
	FallbackName string

	Fs       afero.Fs
	Registry *audio.Registry
	Logger   *log.Logger
}

func DefaultConfig() Config {
	return Config{
		IdleTimeout:  20 * time.Second,
		DrainDelay:   100 * time.Millisecond,
		FallbackName: "A.mp3",
		Fs:           afero.NewOsFs(),
		Registry:     formats.NewRegistry(),
		Logger:       log.Default().WithPrefix("soundfx"),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.IdleTimeout <= 0 {
		c.IdleTimeout = def.IdleTimeout
	}
	switch {
	case c.DrainDelay == 0:
		c.DrainDelay = def.DrainDelay
	case c.DrainDelay < 0:
		c.DrainDelay = 0
	}
	if c.FallbackName == "" {
		c.FallbackName = def.FallbackName
	}
	if c.Fs == nil {
		c.Fs = def.Fs
	}
	if c.Registry == nil {
		c.Registry = def.Registry
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}

	return c
}
