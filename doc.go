// SPDX-License-Identifier: EPL-2.0

// Package soundfx plays short sound files in the background.
//
// Play queues a file and returns immediately. A single worker goroutine
// decodes the file once, keeps the samples in memory and plays them on
// the default audio device; any number of sounds may play at the same
// time. The worker releases the device after 20 seconds without
// requests and is restarted by the next Play.
//
//	soundfx.Play("sounds/click.wav")
//
// A path that cannot be opened plays "A.mp3" from the same directory
// instead. Errors never reach the caller; they are logged through
// github.com/charmbracelet/log.
//
// # Supported Formats
//
//   - WAV (8, 16, 24 and 32-bit integer PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// The decoder is picked by file extension, or by the file header when
// the extension is unknown.
//
// # Custom Setups
//
// The package-level Play uses the oto backend and player.DefaultConfig.
// Build a player.Dispatcher for anything else:
//
//	cfg := player.DefaultConfig()
//	cfg.IdleTimeout = 5 * time.Second
//	d := player.New(output.NewBeep(output.DefaultConfig()), cfg)
//	d.Play("sounds/click.wav")
//
// # Rendering
//
// WriteWAV converts any source to a given rate and channel count and
// writes it as 16-bit PCM, which shows exactly what the device will be
// fed:
//
//	src, _ := d.Cache().Get("sounds/click.ogg")
//	err := soundfx.WriteWAV(f, src, 44100, 2)
package soundfx
