// Package surface holds the water surface parameter set and a CPU mirror of
// the water shader.
package surface

import (
	"fmt"

	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/pkg/math"
)

// MaxIterations bounds the small-wave octave loop on both CPU and GPU.
const MaxIterations = 5

// Params is the live parameter set. The viewer owns one instance and hands the
// same pointer to the debug panel and the render loop, so panel edits reach
// the next frame without any copy.
type Params struct {
	Time float32 // Seconds since the loop started

	WavesElevation float32
	WavesFrequency math.Vec2
	WavesSpeed     float32

	SmallWavesElevation  float32
	SmallWavesFrequency  float32
	SmallWavesSpeed      float32
	SmallWavesIterations int32

	DepthColor   Color
	SurfaceColor Color

	ColorOffset     float32
	ColorMultiplier float32
}

// Defaults returns the reference sea.
func Defaults() *Params {
	p, err := NewParams(config.DefaultWater())
	if err != nil {
		panic(err)
	}
	return p
}

// NewParams builds a parameter set from its config form.
func NewParams(cfg config.WaterConfig) (*Params, error) {
	depth, err := ParseHex(cfg.DepthColor)
	if err != nil {
		return nil, fmt.Errorf("depth color: %w", err)
	}
	surface, err := ParseHex(cfg.SurfaceColor)
	if err != nil {
		return nil, fmt.Errorf("surface color: %w", err)
	}

	return &Params{
		WavesElevation:       cfg.WavesElevation,
		WavesFrequency:       math.Vec2{X: cfg.WavesFrequency[0], Y: cfg.WavesFrequency[1]},
		WavesSpeed:           cfg.WavesSpeed,
		SmallWavesElevation:  cfg.SmallWavesElevation,
		SmallWavesFrequency:  cfg.SmallWavesFrequency,
		SmallWavesSpeed:      cfg.SmallWavesSpeed,
		SmallWavesIterations: int32(cfg.SmallWavesIterations),
		DepthColor:           depth,
		SurfaceColor:         surface,
		ColorOffset:          cfg.ColorOffset,
		ColorMultiplier:      cfg.ColorMultiplier,
	}, nil
}

// WaterConfig converts back to the preset form.
func (p *Params) WaterConfig(noiseSeed int64) config.WaterConfig {
	return config.WaterConfig{
		WavesElevation:       p.WavesElevation,
		WavesFrequency:       [2]float32{p.WavesFrequency.X, p.WavesFrequency.Y},
		WavesSpeed:           p.WavesSpeed,
		SmallWavesElevation:  p.SmallWavesElevation,
		SmallWavesFrequency:  p.SmallWavesFrequency,
		SmallWavesSpeed:      p.SmallWavesSpeed,
		SmallWavesIterations: int(p.SmallWavesIterations),
		DepthColor:           p.DepthColor.Hex(),
		SurfaceColor:         p.SurfaceColor.Hex(),
		ColorOffset:          p.ColorOffset,
		ColorMultiplier:      p.ColorMultiplier,
		NoiseSeed:            noiseSeed,
	}
}

// Assign overwrites every tunable field with src in place. Time is left
// alone so the animation does not jump.
func (p *Params) Assign(src *Params) {
	t := p.Time
	*p = *src
	p.Time = t
}

// Iterations returns the octave count clamped to [0, MaxIterations].
func (p *Params) Iterations() int {
	n := int(p.SmallWavesIterations)
	if n < 0 {
		return 0
	}
	if n > MaxIterations {
		return MaxIterations
	}
	return n
}
