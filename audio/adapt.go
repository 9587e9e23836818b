// SPDX-License-Identifier: EPL-2.0

package audio

// Adapt builds the conversion pipeline that makes src play on a device
// running at rate Hz with the given channel count:
//
//	src -> Resampler (if rates differ) -> ChannelMixer (if channels differ)
//
// When src already matches, src is returned unchanged.
func Adapt(src Source, rate, channels int) Source {
	out := src
	if src.SampleRate() != rate {
		out = NewResampler(out, rate)
	}
	if src.Channels() != channels {
		out = NewChannelMixer(out, channels)
	}
	return out
}
