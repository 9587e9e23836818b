// SPDX-License-Identifier: EPL-2.0

// Package player plays sound files without blocking the caller.
//
// A Dispatcher queues paths for a single background worker. The worker
// opens the output device, decodes each file once into a shared sample
// cache and starts a detached sink per request, so sounds overlap
// freely. After IdleTimeout without requests the worker sleeps for
// DrainDelay, then retires and closes its stream; the next Play starts
// a fresh worker.
//
//	d := player.New(output.NewOto(output.DefaultConfig()), player.DefaultConfig())
//	d.Play("sounds/click.wav")
//
// A file that cannot be opened is replaced by FallbackName ("A.mp3") in
// the same directory. Any other failure (no fallback, no decoder, bad
// data, no device) is logged and ends the worker, dropping requests that
// were still queued. Play itself never fails.
package player
