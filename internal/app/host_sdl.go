package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/internal/engine/input"
	"github.com/Faultbox/ragingsea/internal/engine/window"
)

// sdlHost is the bare window used with the panel disabled. It polls SDL
// events itself and blits the scene straight to the window.
type sdlHost struct {
	window *window.Window
	input  *input.Input
	app    *App

	titleTimer time.Time
}

func newSDLHost(cfg *config.Config) (*sdlHost, error) {
	w, err := window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}
	return &sdlHost{window: w, input: input.New()}, nil
}

func (h *sdlHost) attach(a *App) {
	h.app = a
}

// Schedule runs frames until the window closes or frame returns false.
// VSync paces the loop through SwapBuffers.
func (h *sdlHost) Schedule(frame func() bool) error {
	h.resize()
	h.titleTimer = time.Now()

	for {
		if h.input.Update() {
			return nil
		}

		for _, event := range h.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				h.resize()
			case input.EventMouseDrag:
				h.app.camera.HandleDrag(event.DX, event.DY)
			case input.EventMouseWheel:
				h.app.camera.HandleZoom(event.DY)
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					return nil
				case sdl.SCANCODE_F12:
					h.app.screenshot()
				}
			}
		}

		if !frame() {
			return nil
		}

		dw, dh := h.window.DrawableSize()
		h.app.renderer.Present(dw, dh)
		h.window.SwapBuffers()

		if time.Since(h.titleTimer) >= time.Second {
			h.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", Title, h.app.loop.FPS()))
			h.titleTimer = time.Now()
		}
	}
}

func (h *sdlHost) resize() {
	w, hgt := h.window.GetSize()
	h.app.viewport.Resize(w, hgt, h.window.PixelRatio())
}

func (h *sdlHost) Close() {
	h.window.Close()
}
