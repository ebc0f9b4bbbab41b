// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ragingsea/internal/engine/camera"
	"github.com/Faultbox/ragingsea/internal/engine/scene"
	"github.com/Faultbox/ragingsea/internal/logger"
	"github.com/Faultbox/ragingsea/internal/surface"
)

// Config holds renderer configuration.
type Config struct {
	Width    int32 // Initial backing buffer size in pixels
	Height   int32
	Segments int
}

// Renderer owns the GL state and the scene it draws every frame.
type Renderer struct {
	config Config
	scene  *scene.Scene
	frames uint64
}

// New initializes OpenGL and builds the scene.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, params *surface.Params, cam *camera.OrbitCamera) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	sc, err := scene.New(scene.Config{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Segments: cfg.Segments,
	}, params, cam)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	logger.Debug("scene created",
		zap.Int32("width", cfg.Width),
		zap.Int32("height", cfg.Height),
		zap.Int("segments", cfg.Segments),
	)

	return &Renderer{config: cfg, scene: sc}, nil
}

// Draw renders one frame offscreen. A GL error raised while drawing is
// returned so the host can log it.
func (r *Renderer) Draw() error {
	r.scene.Render()
	r.frames++

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x on frame %d", code, r.frames)
	}
	return nil
}

// Resize sets the backing buffer size in pixels.
func (r *Renderer) Resize(width, height int32) {
	r.config.Width = width
	r.config.Height = height
	r.scene.Resize(width, height)
	logger.Debug("renderer resized",
		zap.Int32("width", width),
		zap.Int32("height", height),
	)
}

// Texture returns the color texture of the last frame.
func (r *Renderer) Texture() uint32 {
	return r.scene.ColorTexture()
}

// Present blits the last frame onto the window's default framebuffer.
func (r *Renderer) Present(dstW, dstH int32) {
	r.scene.Present(dstW, dstH)
}

// Capture reads back the last frame.
func (r *Renderer) Capture() *image.RGBA {
	return r.scene.CaptureImage()
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Uint64("frames", r.frames))
	if r.scene != nil {
		r.scene.Destroy()
		r.scene = nil
	}
}
