// SPDX-License-Identifier: EPL-2.0

// Package output plays audio.Sources on the default sound device.
//
// An Output opens Streams. A Stream hands out Sinks, and every Sink plays
// the sources appended to it back to back. Sinks of the same Stream are
// mixed, so any number of sounds can overlap:
//
//	stream, err := output.NewOto(output.DefaultConfig()).Open()
//	sink, err := stream.NewSink()
//	err = sink.Append(src)
//	sink.Detach() // keeps playing, cleans up after itself
//
// Two backends are provided. Oto talks to the platform API through
// github.com/ebitengine/oto/v3; Beep runs on the speaker mixer of
// github.com/gopxl/beep. Both keep a single device per process. The
// device is suspended while no stream and no sink is using it, so an
// idle program does not keep the audio thread busy.
package output
