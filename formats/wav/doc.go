// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// Decoding goes through github.com/go-audio/wav, so chunks may appear in
// any order and unknown chunks are skipped. Integer PCM at 8, 16, 24 or
// 32 bits is supported (format tag 1 or WAVE_FORMAT_EXTENSIBLE). Float
// and compressed encodings are rejected with ErrUnsupportedWavLayout.
//
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// WriteWAV16 writes a canonical 44-byte header followed by interleaved
// 16-bit samples:
//
//	err := wav.WriteWAV16(f, 44100, 2, samples)
package wav
