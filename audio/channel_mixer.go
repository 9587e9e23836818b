// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer remaps the interleaved channels of src to a fixed count.
// Down to mono it averages all channels; from mono it copies the single
// channel everywhere; otherwise it keeps the leading channels and repeats
// the last one to fill any extra slots.
type ChannelMixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewChannelMixer(src Source, channels int) *ChannelMixer {
	return &ChannelMixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixer source: %w", err)
	}
	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.channels
	needed := frames * in

	// grow, never shrink
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, max(needed, 8192))
	}
	tmp := m.tmp[:needed]

	n, err := m.src.ReadSamples(tmp)
	if n == 0 {
		return 0, err
	}
	frames = n / in

	switch {
	case m.channels == 1 && in == 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (tmp[idx] + tmp[idx+1]) * 0.5
		}
	case m.channels == 1:
		inv := float32(1.0) / float32(in)
		for f := range frames {
			sum := float32(0)
			for _, x := range tmp[f*in : (f+1)*in] {
				sum += x
			}
			dst[f] = sum * inv
		}
	case in == 1:
		for f := range frames {
			out := dst[f*m.channels : (f+1)*m.channels]
			for c := range out {
				out[c] = tmp[f]
			}
		}
	default:
		for f := range frames {
			frame := tmp[f*in : (f+1)*in]
			out := dst[f*m.channels : (f+1)*m.channels]
			for c := range out {
				out[c] = frame[min(c, in-1)]
			}
		}
	}

	return frames * m.channels, err
}
