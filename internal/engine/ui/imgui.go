// Package ui provides the Dear ImGui host and the debug panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the ImGui SDL backend. It owns the window and GL context and
// schedules frames from its own run loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the ImGui backend and its window. The GL context is
// current when this returns.
func NewBackend(title string, width, height int32) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})

	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1.0))
	b.backend.CreateWindow(title, int(width), int(height))

	return b, nil
}

// Schedule runs frame once per backend iteration, then draw for the UI layer.
// When frame returns false the window is asked to close and Schedule returns
// after the current iteration.
func (b *Backend) Schedule(frame func() bool, draw func()) {
	b.backend.Run(func() {
		if !frame() {
			b.backend.SetShouldClose(true)
			return
		}
		draw()
	})
}

// Close asks the backend to end its run loop.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// DisplaySize returns the window size in logical units.
func DisplaySize() (int, int) {
	size := imgui.CurrentIO().DisplaySize()
	return int(size.X), int(size.Y)
}

// PixelRatio returns the framebuffer scale reported by the backend.
func PixelRatio() float32 {
	scale := imgui.CurrentIO().DisplayFramebufferScale()
	if scale.X <= 0 {
		return 1
	}
	return scale.X
}

// DrawSceneTexture fills the main viewport with the scene texture, behind
// every other window.
func DrawSceneTexture(textureID uint32) {
	viewport := imgui.MainViewport()
	pos := viewport.WorkPos()
	size := viewport.WorkSize()

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	imgui.PushStyleVarFloat(imgui.StyleVarWindowBorderSize, 0)

	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoBringToFrontOnFocus | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoBackground
	if imgui.BeginV("##scene", nil, flags) {
		// Flip V: GL textures start at the bottom row.
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageWithBgV(
			*texRef,
			size,
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 1),
			imgui.NewVec4(1, 1, 1, 1),
		)
	}
	imgui.End()
	imgui.PopStyleVarV(2)
}

// PointerInput is the camera input ImGui did not consume this frame.
type PointerInput struct {
	DragX, DragY float32
	Wheel        float32
}

// ScenePointer returns mouse drag and wheel deltas not captured by a panel
// widget. The scene window takes no inputs, so it never captures.
func ScenePointer() PointerInput {
	io := imgui.CurrentIO()
	if io.WantCaptureMouse() {
		return PointerInput{}
	}

	var in PointerInput
	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		delta := io.MouseDelta()
		in.DragX, in.DragY = delta.X, delta.Y
	}
	in.Wheel = io.MouseWheel()
	return in
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
