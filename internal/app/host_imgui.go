package app

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/internal/engine/ui"
	"github.com/Faultbox/ragingsea/internal/surface"
)

// imguiHost runs frames from the Dear ImGui backend. The scene is drawn as a
// full-window image beneath the debug panel.
type imguiHost struct {
	backend *ui.Backend
	panel   *ui.Panel
	app     *App

	width, height int
	ratio         float32
}

func newImguiHost(cfg *config.Config, params, defaults *surface.Params) (*imguiHost, error) {
	backend, err := ui.NewBackend(Title, int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return nil, err
	}
	return &imguiHost{
		backend: backend,
		panel:   ui.NewPanel(params, defaults, cfg.Water.NoiseSeed),
	}, nil
}

func (h *imguiHost) attach(a *App) {
	h.app = a
}

// Schedule runs until the backend window closes or frame returns false.
func (h *imguiHost) Schedule(frame func() bool) error {
	h.backend.Schedule(func() bool {
		h.pollResize()
		h.handleInput()
		return frame()
	}, func() {
		ui.DrawSceneTexture(h.app.renderer.Texture())
		h.panel.Draw()
	})
	return nil
}

// pollResize forwards display size changes; ImGui reports them per frame.
func (h *imguiHost) pollResize() {
	w, hgt := ui.DisplaySize()
	ratio := ui.PixelRatio()
	if w == h.width && hgt == h.height && ratio == h.ratio {
		return
	}
	h.width, h.height, h.ratio = w, hgt, ratio
	h.app.viewport.Resize(w, hgt, ratio)
}

func (h *imguiHost) handleInput() {
	in := ui.ScenePointer()
	if in.DragX != 0 || in.DragY != 0 {
		h.app.camera.HandleDrag(in.DragX, in.DragY)
	}
	if in.Wheel != 0 {
		h.app.camera.HandleZoom(in.Wheel)
	}

	if imgui.CurrentIO().WantTextInput() {
		return
	}
	if ui.IsKeyPressed(imgui.KeyF12) {
		h.app.screenshot()
	}
	if ui.IsKeyPressed(imgui.KeyEscape) {
		h.app.Stop()
	}
}

func (h *imguiHost) Close() {
	h.backend.Close()
}
