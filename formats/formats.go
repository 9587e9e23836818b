// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/formats/aiff"
	"github.com/ik5/soundfx/formats/mp3"
	"github.com/ik5/soundfx/formats/vorbis"
	"github.com/ik5/soundfx/formats/wav"
)

// NewRegistry returns a registry with wav, mp3, ogg/oga and aiff/aif.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}
