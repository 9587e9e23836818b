// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"math"
	"testing"

	"github.com/ik5/soundfx/audio"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"max negative", -1.0, -math.MaxInt16},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16383},
		{"small positive", 0.001, 32},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -1.5, -math.MaxInt16},
		{"clamp way over max", 100.0, math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := audio.Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := audio.Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := audio.Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("f=%v gives %v, previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int16
		want float32
	}{
		{0, 0},
		{16384, 0.5},
		{-16384, -0.5},
		{math.MinInt16, -1},
	}

	for _, tt := range tests {
		if got := audio.Int16ToFloat32(tt.in); got != tt.want {
			t.Errorf("Int16ToFloat32(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        int
		bitDepth int
		want     float32
	}{
		{"8-bit half", 64, 8, 0.5},
		{"8-bit min", -128, 8, -1},
		{"16-bit half", 16384, 16, 0.5},
		{"24-bit half", 4194304, 24, 0.5},
		{"32-bit min", math.MinInt32, 32, -1},
		{"unknown depth as 16-bit", 16384, 12, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := audio.IntToFloat32(tt.v, tt.bitDepth); got != tt.want {
				t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{"start returns y1", 0, 1, 2, 3, 0, 1, 0.001},
		{"end returns y2", 0, 1, 2, 3, 1, 2, 0.001},
		{"linear midpoint", 0, 1, 2, 3, 0.5, 1.5, 0.001},
		{"linear quarter", 1, 2, 3, 4, 0.25, 2.25, 0.01},
		{"symmetric around zero", -1, -0.5, 0.5, 1, 0.5, 0, 0.001},
		{"waveform peak", 0.5, 0.9, 0.7, 0.3, 0.3, 0.85, 0.1},
		{"silence", 0, 0, 0, 0, 0.5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := audio.CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if diff := float32(math.Abs(float64(got - tt.want))); diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (±%v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	for i := range 100 {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)

		if got := audio.CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Errorf("x=0 gives %v, want y1=%v", got, y1)
		}
		if got := audio.CubicInterpolate(y0, y1, y2, y3, 1); got != y2 {
			t.Errorf("x=1 gives %v, want y2=%v", got, y2)
		}
	}
}

func TestConversions_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	in := make([]float32, 1024)
	out := make([]int16, 1024)

	allocs := testing.AllocsPerRun(100, func() {
		for i := range in {
			out[i] = audio.Float32ToInt16(in[i])
		}
		_ = audio.CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	})
	if allocs > 0 {
		t.Errorf("allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	in := make([]float32, 8000)
	out := make([]int16, 8000)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()
	for b.Loop() {
		for j := range in {
			out[j] = audio.Float32ToInt16(in[j])
		}
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var result float32

	b.ReportAllocs()
	for b.Loop() {
		result = audio.CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	}
	_ = result
}
