// Package app wires configuration, the parameter set, the renderer and a host
// window into the running viewer.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/internal/engine/camera"
	"github.com/Faultbox/ragingsea/internal/engine/loop"
	"github.com/Faultbox/ragingsea/internal/engine/renderer"
	"github.com/Faultbox/ragingsea/internal/engine/viewport"
	"github.com/Faultbox/ragingsea/internal/export"
	"github.com/Faultbox/ragingsea/internal/logger"
	"github.com/Faultbox/ragingsea/internal/surface"
)

// Title is the window title.
const Title = "Raging Sea"

// host owns the window and decides when frames run.
type host interface {
	loop.Scheduler
	attach(a *App)
	Close()
}

// App is the viewer instance.
type App struct {
	cfg *config.Config

	params   *surface.Params
	defaults *surface.Params

	camera      *camera.OrbitCamera
	renderer    *renderer.Renderer
	viewport    *viewport.Viewport
	loop        *loop.Loop
	host        host
	screenshots *export.ScreenshotCapture
}

// New creates the window, GL resources and render loop.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("panel", cfg.Graphics.ShowPanel),
	)

	params, err := surface.NewParams(cfg.Water)
	if err != nil {
		return nil, fmt.Errorf("invalid water config: %w", err)
	}
	defaults, _ := surface.NewParams(cfg.Water)

	a := &App{
		cfg:         cfg,
		params:      params,
		defaults:    defaults,
		camera:      camera.NewOrbitCamera(cfg.Camera),
		screenshots: export.NewScreenshotCapture(cfg.Export.OutputDir, "ragingsea"),
	}

	// Create the host first: it creates the GL context.
	if cfg.Graphics.ShowPanel {
		a.host, err = newImguiHost(cfg, params, defaults)
	} else {
		a.host, err = newSDLHost(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Sized for the logical window; the host's first resize applies the
	// pixel ratio.
	a.renderer, err = renderer.New(renderer.Config{
		Width:    int32(cfg.Graphics.Width),
		Height:   int32(cfg.Graphics.Height),
		Segments: cfg.Graphics.MeshSegments,
	}, params, a.camera)
	if err != nil {
		a.host.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.viewport = viewport.New(a.camera, a.renderer, cfg.Graphics.MaxPixelRatio)
	a.loop = loop.New(params, a.camera, a.renderer)
	a.host.attach(a)

	logger.Info("viewer initialized successfully")
	return a, nil
}

// Run blocks until the window closes, Stop is called or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	logger.Info("starting render loop")
	return a.loop.Run(ctx, a.host)
}

// Stop ends the render loop after the current frame.
func (a *App) Stop() {
	a.loop.Stop()
}

// Close releases GL resources and the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.host != nil {
		a.host.Close()
	}
}

// screenshot writes the last frame to the export directory.
func (a *App) screenshot() {
	path, err := a.screenshots.Capture(a.renderer.Capture())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
