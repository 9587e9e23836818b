// SPDX-License-Identifier: EPL-2.0

package audio

import "bytes"

// SniffLen is the number of leading bytes Sniff needs to decide.
const SniffLen = 12

// Sniff guesses the container format from the first bytes of a file.
// It returns "wav", "mp3", "ogg", "aiff" or "" when nothing matches.
func Sniff(header []byte) string {
	switch {
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return "wav"
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return "aiff"
	case len(header) >= 4 && bytes.Equal(header[:4], []byte("OggS")):
		return "ogg"
	case len(header) >= 3 && bytes.Equal(header[:3], []byte("ID3")):
		return "mp3"
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return "mp3"
	}
	return ""
}
