// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler streams src at a different sample rate using cubic
// interpolation over a four frame window. It works on interleaved
// samples and keeps the channel count. When downsampling, a one-pole
// low-pass runs over the input to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	valid  [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	frame []float32
	eof   bool
	done  bool

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame pulls a single frame from src into r.frame.
func (r *Resampler) readFrame() (bool, error) {
	if r.eof {
		return false, io.EOF
	}

	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("reading source frame: %w", err)
	}

	if n < r.channels {
		return false, nil
	}

	if r.lowpass {
		for c, x := range r.frame {
			y := r.alpha*x + (1-r.alpha)*r.state[c]
			r.frame[c] = y
			r.state[c] = y
		}
	}
	return true, nil
}

// prime loads the first three frames. The slot before the first frame
// repeats it; slots past the end of a short source stay invalid.
func (r *Resampler) prime() error {
	r.primed = true

	if r.lowpass {
		// seed the filter with the first raw frame to avoid a fade-in
		n, err := r.src.ReadSamples(r.frame)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return fmt.Errorf("reading source frame: %w", err)
		}
		if n < r.channels {
			return io.EOF
		}
		copy(r.state, r.frame)
	} else {
		ok, err := r.readFrame()
		if err != nil && err != io.EOF {
			return err
		}
		if !ok {
			return io.EOF
		}
	}

	copy(r.window[0], r.frame)
	copy(r.window[1], r.frame)
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.window); i++ {
		ok, err := r.readFrame()
		if err != nil && err != io.EOF {
			return err
		}
		if !ok {
			break
		}
		copy(r.window[i], r.frame)
		r.valid[i] = true
	}

	return nil
}

// advance shifts the window one frame forward. It reports io.EOF once
// window[1] has moved past the last source frame.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	copy(r.valid[:], r.valid[1:])
	r.valid[3] = false

	if !r.eof {
		ok, err := r.readFrame()
		if err != nil && err != io.EOF {
			return err
		}
		if ok {
			copy(r.window[3], r.frame)
			r.valid[3] = true
		}
	}

	if !r.valid[1] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of the channel count. Output positions run from the first
// source frame up to and including the last one.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				r.done = true
			}
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					return r.finish(written)
				}
				return written * r.channels, err
			}
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			y0 := r.window[0][c]
			y1 := r.window[1][c]
			y2 := y1
			if r.valid[2] {
				y2 = r.window[2][c]
			}
			y3 := y2
			if r.valid[3] {
				y3 = r.window[3][c]
			}
			if !r.valid[0] {
				y0 = y1
			}
			out[c] = cubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

func (r *Resampler) finish(written int) (int, error) {
	r.done = true
	return written * r.channels, io.EOF
}
