// SPDX-License-Identifier: EPL-2.0

package soundfx

import (
	"fmt"
	"io"

	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/formats/wav"
)

// WriteWAV adapts src to rate and channels and writes it to w as 16-bit
// PCM WAV. src is read to the end and closed.
func WriteWAV(w io.Writer, src audio.Source, rate, channels int) error {
	defer src.Close()

	out := audio.Adapt(src, rate, channels)

	// frame aligned
	chunk := 4096 - 4096%channels
	buf := make([]float32, chunk)

	var pcm16 []int16
	if sized, ok := src.(audio.Sized); ok && sized.Frames() > 0 {
		frames := sized.Frames() * int64(rate) / int64(src.SampleRate())
		pcm16 = make([]int16, 0, (frames+1)*int64(channels))
	}

	for {
		n, err := out.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, audio.Float32ToInt16(x))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}

	return wav.WriteWAV16(w, rate, channels, pcm16)
}
