// Package scene composes the water mesh, its shader program and the camera
// into one offscreen render pass.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ragingsea/internal/engine/camera"
	"github.com/Faultbox/ragingsea/internal/engine/framebuffer"
	"github.com/Faultbox/ragingsea/internal/engine/water"
	"github.com/Faultbox/ragingsea/internal/surface"
)

// Config contains scene configuration options.
type Config struct {
	Width    int32 // Backing buffer size in pixels
	Height   int32
	Segments int // Grid subdivisions per side
}

// Scene renders the sea into its own framebuffer.
type Scene struct {
	config Config

	framebuffer *framebuffer.Framebuffer
	water       *WaterRenderer

	Camera     *camera.OrbitCamera
	ClearColor [4]float32
}

// New creates a scene drawing params through cam.
func New(cfg Config, params *surface.Params, cam *camera.OrbitCamera) (*Scene, error) {
	s := &Scene{
		config:     cfg,
		Camera:     cam,
		ClearColor: [4]float32{0, 0, 0, 1},
	}

	var err error
	s.framebuffer, err = framebuffer.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	s.water, err = NewWaterRenderer(water.Default(cfg.Segments), params)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating water renderer: %w", err)
	}

	return s, nil
}

// Render draws one frame into the framebuffer and returns its color texture.
func (s *Scene) Render() uint32 {
	restore := s.framebuffer.Bind()
	defer restore()

	c := s.ClearColor
	s.framebuffer.Clear(c[0], c[1], c[2], c[3])

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE) // the surface is visible from below

	s.water.Render(s.Camera.ViewMatrix(), s.Camera.ProjectionMatrix())

	return s.framebuffer.ColorTexture()
}

// Resize updates the backing buffer size.
func (s *Scene) Resize(width, height int32) {
	if width == s.config.Width && height == s.config.Height {
		return
	}
	s.config.Width = width
	s.config.Height = height
	s.framebuffer.Resize(width, height)
}

// Size returns the backing buffer size.
func (s *Scene) Size() (int32, int32) {
	return s.framebuffer.Size()
}

// ColorTexture returns the rendered color texture.
func (s *Scene) ColorTexture() uint32 {
	return s.framebuffer.ColorTexture()
}

// Present blits the last frame to the default framebuffer.
func (s *Scene) Present(dstW, dstH int32) {
	s.framebuffer.BlitToScreen(dstW, dstH)
}

// CaptureImage returns the last rendered frame, top row first.
func (s *Scene) CaptureImage() *image.RGBA {
	return s.framebuffer.ReadImage()
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.water != nil {
		s.water.Destroy()
	}
	if s.framebuffer != nil {
		s.framebuffer.Destroy()
	}
}
