package surface

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constNoise returns the same value everywhere and records the last call.
type constNoise struct {
	v       float64
	calls   int
	x, y, z float64
}

func (n *constNoise) Eval3(x, y, z float64) float64 {
	n.calls++
	n.x, n.y, n.z = x, y, z
	return n.v
}

func TestElevationDeterministic(t *testing.T) {
	p := Defaults()
	p.Time = 3.7

	a, b := New(42), New(42)
	points := [][2]float64{{0, 0}, {0.25, -0.5}, {-1, 1}, {0.731, 0.113}}

	for _, pt := range points {
		first := a.Elevation(p, pt[0], pt[1])
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, a.Elevation(p, pt[0], pt[1]), "repeat evaluation at %v", pt)
		}
		assert.Equal(t, first, b.Elevation(p, pt[0], pt[1]), "same seed at %v", pt)
	}
}

func TestBigWavesOriginAtTimeZero(t *testing.T) {
	p := Defaults()
	require.Equal(t, float32(0.2), p.WavesElevation)
	require.Equal(t, float32(4), p.WavesFrequency.X)
	require.Equal(t, float32(1.5), p.WavesFrequency.Y)
	require.Equal(t, float32(0.75), p.WavesSpeed)
	p.Time = 0

	assert.Equal(t, 0.0, BigWaves(p, 0, 0))
}

func TestBigWavesFormula(t *testing.T) {
	p := Defaults()
	p.Time = 1.25
	x, z := 0.3, -0.6

	tt := float64(p.Time) * 0.75
	want := stdmath.Sin(x*4+tt) * stdmath.Sin(z*1.5+tt) * float64(float32(0.2))
	assert.InDelta(t, want, BigWaves(p, x, z), 1e-9)
}

func TestSmallWavesZeroIterations(t *testing.T) {
	noise := &constNoise{v: 0.9}
	s := NewWithNoise(noise)
	p := Defaults()
	p.SmallWavesIterations = 0

	for _, tm := range []float32{0, 1, 1000} {
		p.Time = tm
		for _, pt := range [][2]float64{{0, 0}, {1, -1}, {-0.4, 0.9}} {
			assert.Equal(t, 0.0, s.SmallWaves(p, pt[0], pt[1]))
		}
	}
	assert.Zero(t, noise.calls, "noise must not be sampled with zero iterations")

	p.SmallWavesIterations = -3
	assert.Equal(t, 0.0, s.SmallWaves(p, 0.5, 0.5))
}

func TestSmallWavesOctaveContract(t *testing.T) {
	noise := &constNoise{v: -0.5}
	s := NewWithNoise(noise)
	p := Defaults()
	p.Time = 2
	p.SmallWavesIterations = 4

	got := s.SmallWaves(p, 0.1, 0.2)

	elev := float64(p.SmallWavesElevation)
	want := -0.5 * elev * (1 + 1.0/2 + 1.0/3 + 1.0/4)
	assert.InDelta(t, want, got, 1e-9)
	assert.Equal(t, 4, noise.calls)

	// Last octave samples at frequency * 4, time * small speed.
	freq := float64(p.SmallWavesFrequency)
	assert.InDelta(t, 0.1*freq*4, noise.x, 1e-9)
	assert.InDelta(t, 0.2*freq*4, noise.y, 1e-9)
	assert.InDelta(t, 2*float64(p.SmallWavesSpeed), noise.z, 1e-6)
}

func TestSmallWavesIterationCap(t *testing.T) {
	noise := &constNoise{v: 1}
	s := NewWithNoise(noise)
	p := Defaults()
	p.SmallWavesIterations = 50

	s.SmallWaves(p, 0, 0)
	assert.Equal(t, MaxIterations, noise.calls)
}

func TestSmallWavesNeverPositive(t *testing.T) {
	s := New(7)
	p := Defaults()
	for i := 0; i < 200; i++ {
		p.Time = float32(i) * 0.13
		x := stdmath.Sin(float64(i)) * 1.3
		z := stdmath.Cos(float64(i)*0.7) * 1.1
		assert.LessOrEqual(t, s.SmallWaves(p, x, z), 0.0)
	}
}

func TestElevationTotalOnExtremeInputs(t *testing.T) {
	s := New(1)
	p := Defaults()
	p.SmallWavesFrequency = 1e30
	p.WavesFrequency.X = float32(stdmath.Inf(1))
	p.Time = 1e20

	assert.NotPanics(t, func() {
		s.Elevation(p, stdmath.Inf(-1), stdmath.NaN())
		s.Sample(p, 1e300, -1e300)
	})

	sample := s.Sample(p, stdmath.Inf(1), 0)
	assert.False(t, stdmath.IsNaN(sample.Mix))
}

func TestMixFactorClamped(t *testing.T) {
	tests := []struct {
		name       string
		height     float64
		offset     float32
		multiplier float32
		want       float64
	}{
		{"positive infinity", stdmath.Inf(1), 0.11, 5, 1},
		{"negative infinity", stdmath.Inf(-1), 0.11, 5, 0},
		{"infinity times zero", stdmath.Inf(1), 0.11, 0, 0},
		{"nan height", stdmath.NaN(), 0.11, 5, 0},
		{"huge offset", 0, 1e30, 10, 1},
		{"huge negative multiplier", 0.5, 0, -1e30, 0},
		{"inside range", 0, 0.1, 5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Defaults()
			p.ColorOffset = tt.offset
			p.ColorMultiplier = tt.multiplier

			got := MixFactor(p, tt.height)
			assert.False(t, stdmath.IsNaN(got))
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestColorAtEndpoints(t *testing.T) {
	p := Defaults()

	assert.Equal(t, p.DepthColor, ColorAt(p, stdmath.Inf(-1)))

	top := ColorAt(p, stdmath.Inf(1))
	assert.InDelta(t, p.SurfaceColor.R, top.R, 1e-6)
	assert.InDelta(t, p.SurfaceColor.G, top.G, 1e-6)
	assert.InDelta(t, p.SurfaceColor.B, top.B, 1e-6)
}

func TestPanelEditReachesNextEvaluation(t *testing.T) {
	s := New(0)
	p := Defaults()
	controls := Bind(p)

	before := ColorAt(p, -10)

	depth, ok := controls.Lookup("depthColor")
	require.True(t, ok)
	require.NoError(t, depth.SetHex("#ff0000"))

	// No commit step: the next evaluation already sees the new color.
	after := ColorAt(p, -10)
	assert.NotEqual(t, before, after)
	assert.Equal(t, Color{R: 1}, after)

	sample := s.Sample(p, 0, 0)
	assert.Equal(t, p.DepthColor.Lerp(p.SurfaceColor, float32(sample.Mix)), sample.Color)
}
