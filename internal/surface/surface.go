package surface

import (
	stdmath "math"

	"github.com/ojrac/opensimplex-go"
)

// Noise is a deterministic 3-D gradient noise in roughly [-1, 1].
type Noise interface {
	Eval3(x, y, z float64) float64
}

// Surface evaluates the water shader on the CPU. It mirrors water.vert and
// water.frag except for the noise kernel: the GPU uses classic Perlin, the
// CPU uses OpenSimplex. Both satisfy the same octave contract.
type Surface struct {
	noise Noise
}

// Sample is the shader output at one grid position.
type Sample struct {
	Height float64 // Final displaced elevation (big + small waves)
	Mix    float64 // Clamped depth-to-surface mix factor
	Color  Color
}

// New returns a Surface backed by OpenSimplex noise with the given seed.
func New(seed int64) *Surface {
	return NewWithNoise(opensimplex.New(seed))
}

// NewWithNoise returns a Surface using a caller-provided noise kernel.
func NewWithNoise(noise Noise) *Surface {
	return &Surface{noise: noise}
}

// BigWaves returns the large-wave elevation at (x, z) for p.Time.
func BigWaves(p *Params, x, z float64) float64 {
	t := float64(p.Time)
	speed := float64(p.WavesSpeed)

	return stdmath.Sin(x*float64(p.WavesFrequency.X)+t*speed) *
		stdmath.Sin(z*float64(p.WavesFrequency.Y)+t*speed) *
		float64(p.WavesElevation)
}

// SmallWaves returns the summed octave term at (x, z). It is never positive:
// each octave carves |noise| scaled by elevation/i out of the surface.
func (s *Surface) SmallWaves(p *Params, x, z float64) float64 {
	n := p.Iterations()
	if n == 0 {
		return 0
	}

	freq := float64(p.SmallWavesFrequency)
	elevation := float64(p.SmallWavesElevation)
	w := float64(p.Time) * float64(p.SmallWavesSpeed)

	var h float64
	for i := 1; i <= n; i++ {
		fi := float64(i)
		nx, nz := x*freq*fi, z*freq*fi
		if !finite(nx) || !finite(nz) || !finite(w) {
			return stdmath.NaN()
		}
		h -= stdmath.Abs(s.noise.Eval3(nx, nz, w)) * elevation / fi
	}
	return h
}

// Elevation returns the final displaced height at (x, z).
func (s *Surface) Elevation(p *Params, x, z float64) float64 {
	return BigWaves(p, x, z) + s.SmallWaves(p, x, z)
}

// MixFactor returns clamp((height + offset) * multiplier, 0, 1).
// Undefined products such as inf*0 yield 0.
func MixFactor(p *Params, height float64) float64 {
	m := (height + float64(p.ColorOffset)) * float64(p.ColorMultiplier)
	switch {
	case stdmath.IsNaN(m):
		return 0
	case m < 0:
		return 0
	case m > 1:
		return 1
	}
	return m
}

// ColorAt returns the fragment color for a given height.
func ColorAt(p *Params, height float64) Color {
	return p.DepthColor.Lerp(p.SurfaceColor, float32(MixFactor(p, height)))
}

// Sample evaluates both shader stages at (x, z).
func (s *Surface) Sample(p *Params, x, z float64) Sample {
	h := s.Elevation(p, x, z)
	mix := MixFactor(p, h)
	return Sample{
		Height: h,
		Mix:    mix,
		Color:  p.DepthColor.Lerp(p.SurfaceColor, float32(mix)),
	}
}

func finite(v float64) bool {
	return !stdmath.IsNaN(v) && !stdmath.IsInf(v, 0)
}
