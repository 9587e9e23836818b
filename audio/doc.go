// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the playback engine is built on.
//
//   - Source: a stream of interleaved float32 samples in [-1.0, 1.0]
//   - Decoder and Registry: turn encoded files into Sources
//   - Buffer: a fully decoded Source held in memory and cloned per playback
//   - Resampler and ChannelMixer: fit a Source to an output device
//
// # Buffers
//
// A Buffer is immutable once built. Clone is O(1) and returns a
// BufferSource with its own read position over the shared samples, so one
// decoded sound can play many times at once:
//
//	buf, err := audio.NewBuffer(src) // drains and closes src
//	a := buf.Clone()
//	b := buf.Clone() // a and b read independently
//
// # Picking a decoder
//
// The registry is keyed by format name, which is also the file extension.
// ForFile falls back to sniffing the header when the extension is unknown:
//
//	dec, format, err := registry.ForFile("sounds/click.bin", header)
//
// # Adapting to a device
//
//	src = audio.Adapt(src, 44100, 2)
//
// chains a Resampler (cubic interpolation, with a one-pole low-pass when
// downsampling) and a ChannelMixer as needed.
//
// # End of stream
//
// ReadSamples returns io.EOF once no more data is available. A call may
// return n > 0 together with io.EOF.
package audio
