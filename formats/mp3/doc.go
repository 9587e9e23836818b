// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// Output is always stereo float32 at the file's sample rate. When the
// input is seekable (an *os.File or *bytes.Reader) the source also
// reports its length, which lets audio.NewBuffer allocate once:
//
//	src, err := mp3.Decoder{}.Decode(bytes.NewReader(data))
//	buf, err := audio.NewBuffer(src)
//
// The playback engine's fallback sound, A.mp3, goes through this decoder.
package mp3
