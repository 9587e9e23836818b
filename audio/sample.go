// SPDX-License-Identifier: EPL-2.0

package audio

// Float32ToInt16 converts a sample in [-1,1] to 16-bit PCM, clamping
// anything outside the range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for the positive side so 1.0 does not overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts 16-bit PCM to a sample in [-1,1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// IntToFloat32 normalizes a signed integer sample of the given bit depth.
// Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 128.0
	case 24:
		scale = 8388608.0
	case 32:
		scale = 2147483648.0
	default:
		scale = 32768.0
	}
	return float32(v) / scale
}

// cubicInterpolate is a Catmull-Rom spline through y0..y3.
// x is the fractional position between y1 and y2 (0 <= x <= 1).
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
