// Package viewport tracks the drawable size and keeps the camera projection
// and the render buffer in step with it.
package viewport

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/ragingsea/internal/logger"
)

// DefaultMaxPixelRatio caps buffer density on very high DPI displays.
const DefaultMaxPixelRatio = 2

// Projector receives the new aspect ratio and recomputes its projection.
type Projector interface {
	SetAspect(aspect float32)
}

// Target is a render buffer sized in physical pixels.
type Target interface {
	Resize(width, height int32)
}

// Viewport holds the current logical size and pixel ratio.
type Viewport struct {
	Width, Height int     // Logical units
	PixelRatio    float32 // Effective ratio after the cap
	MaxPixelRatio float32

	projector Projector
	target    Target
}

// New creates a viewport. A maxRatio <= 0 uses DefaultMaxPixelRatio.
func New(projector Projector, target Target, maxRatio float32) *Viewport {
	if !(maxRatio > 0) {
		maxRatio = DefaultMaxPixelRatio
	}
	return &Viewport{
		PixelRatio:    1,
		MaxPixelRatio: maxRatio,
		projector:     projector,
		target:        target,
	}
}

// ClampPixelRatio returns min(dpr, max), treating unusable ratios as 1.
func ClampPixelRatio(dpr, max float32) float32 {
	if !(dpr > 0) || gomath.IsInf(float64(dpr), 0) {
		dpr = 1
	}
	if dpr > max {
		return max
	}
	return dpr
}

// Resize applies a host resize: the camera aspect follows width/height and
// the buffer is sized to size*min(dpr, MaxPixelRatio). Applying the same
// values twice leaves everything unchanged. A zero-area size (minimized
// window) is recorded but not propagated.
func (v *Viewport) Resize(width, height int, dpr float32) {
	v.Width, v.Height = width, height
	v.PixelRatio = ClampPixelRatio(dpr, v.MaxPixelRatio)

	if width <= 0 || height <= 0 {
		logger.Debug("ignoring zero-area resize", zap.Int("width", width), zap.Int("height", height))
		return
	}

	if v.projector != nil {
		v.projector.SetAspect(v.Aspect())
	}
	bw, bh := v.BufferSize()
	if v.target != nil {
		v.target.Resize(bw, bh)
	}

	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("pixel_ratio", v.PixelRatio),
		zap.Int32("buffer_width", bw),
		zap.Int32("buffer_height", bh),
	)
}

// Aspect returns width/height, or 1 for a degenerate size.
func (v *Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// BufferSize returns the render buffer size in physical pixels.
func (v *Viewport) BufferSize() (int32, int32) {
	w := int32(gomath.Round(float64(float32(v.Width) * v.PixelRatio)))
	h := int32(gomath.Round(float64(float32(v.Height) * v.PixelRatio)))
	return max(w, 1), max(h, 1)
}
