package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/ragingsea/internal/logger"
	"github.com/Faultbox/ragingsea/internal/surface"
)

const statusDuration = 3 * time.Second

type presetOp int

const (
	opLoad presetOp = iota
	opSave
)

// presetRequest is a file picked in the dialog goroutine, applied on the
// render thread.
type presetRequest struct {
	op   presetOp
	path string
}

// Panel is the debug window. Every widget writes straight into the bound
// parameter set; there is no apply step.
type Panel struct {
	params    *surface.Params
	controls  surface.Controls
	defaults  *surface.Params
	noiseSeed int64

	Visible bool

	pending    chan presetRequest
	dialogOpen bool
	status     string
	statusTime time.Time
}

// NewPanel binds a panel to params. defaults is what Reset restores.
func NewPanel(params, defaults *surface.Params, noiseSeed int64) *Panel {
	return &Panel{
		params:    params,
		controls:  surface.Bind(params),
		defaults:  defaults,
		noiseSeed: noiseSeed,
		Visible:   true,
		pending:   make(chan presetRequest, 1),
	}
}

// Draw renders the panel. Call once per frame inside the ImGui frame.
func (p *Panel) Draw() {
	p.applyPending()

	if IsKeyPressed(imgui.KeyH) && !imgui.CurrentIO().WantTextInput() {
		p.Visible = !p.Visible
	}
	if !p.Visible {
		return
	}

	pos := imgui.MainViewport().WorkPos()
	imgui.SetNextWindowPosV(imgui.NewVec2(pos.X+10, pos.Y+10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowBgAlpha(0.85)

	if imgui.BeginV("Raging Sea", &p.Visible, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.Text(fmt.Sprintf("%.0f FPS  t=%.1fs", imgui.CurrentIO().Framerate(), p.params.Time))
		imgui.Separator()

		for _, c := range p.controls {
			p.drawControl(c)
		}

		imgui.Separator()
		if imgui.Button("Reset") {
			p.Reset()
		}
		imgui.SameLine()
		if imgui.Button("Save preset") {
			p.openDialog(opSave)
		}
		imgui.SameLine()
		if imgui.Button("Load preset") {
			p.openDialog(opLoad)
		}

		if p.status != "" && time.Since(p.statusTime) < statusDuration {
			imgui.TextDisabled(p.status)
		}
		imgui.TextDisabled("Drag to orbit, scroll to zoom, H hides")
	}
	imgui.End()
}

func (p *Panel) drawControl(c *surface.Control) {
	switch c.Kind {
	case surface.KindFloat:
		if imgui.SliderFloatV(c.Name, c.Float, c.Min, c.Max, "%.3f", imgui.SliderFlagsNone) {
			c.Clamp()
		}

	case surface.KindInt:
		if imgui.SliderIntV(c.Name, c.Int, int32(c.Min), int32(c.Max), "%d", imgui.SliderFlagsNone) {
			c.Clamp()
		}

	case surface.KindColor:
		col := c.Color.Array()
		if imgui.ColorEdit3("##"+c.Name, &col) {
			*c.Color = surface.ColorFromArray(col)
			*c.Hex = c.Color.Hex()
		}
		imgui.SameLine()
		imgui.SetNextItemWidth(90)
		if imgui.InputTextWithHint(c.Name, "#rrggbb", c.Hex, imgui.InputTextFlagsEnterReturnsTrue, nil) {
			// Malformed text is logged and the color keeps its value.
			_ = c.OnChange()
		}
	}
}

// Reset restores every tunable field to the defaults.
func (p *Panel) Reset() {
	p.params.Assign(p.defaults)
	p.controls.Sync()
	p.setStatus("reset to defaults")
}

// openDialog shows a native file dialog off the render thread.
func (p *Panel) openDialog(op presetOp) {
	if p.dialogOpen {
		return
	}
	p.dialogOpen = true

	go func() {
		b := dialog.File().Filter("YAML preset", "yaml", "yml").Filter("All Files", "*")

		var path string
		var err error
		if op == opSave {
			path, err = b.Title("Save preset").Save()
		} else {
			path, err = b.Title("Load preset").Load()
		}

		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Warn("file dialog failed", zap.Error(err))
			}
			path = ""
		}
		p.pending <- presetRequest{op: op, path: path}
	}()
}

// applyPending handles a finished dialog on the render thread.
func (p *Panel) applyPending() {
	select {
	case req := <-p.pending:
		p.dialogOpen = false
		if req.path == "" {
			return
		}
		switch req.op {
		case opSave:
			p.savePreset(req.path)
		case opLoad:
			p.loadPreset(req.path)
		}
	default:
	}
}

func (p *Panel) savePreset(path string) {
	if err := p.params.SavePreset(path, p.noiseSeed); err != nil {
		logger.Error("saving preset", zap.String("path", path), zap.Error(err))
		p.setStatus("save failed: " + err.Error())
		return
	}
	logger.Info("preset saved", zap.String("path", path))
	p.setStatus("saved " + path)
}

func (p *Panel) loadPreset(path string) {
	next, err := surface.LoadPreset(path)
	if err != nil {
		logger.Error("loading preset", zap.String("path", path), zap.Error(err))
		p.setStatus("load failed: " + err.Error())
		return
	}
	p.params.Assign(next)
	p.controls.Sync()
	logger.Info("preset loaded", zap.String("path", path))
	p.setStatus("loaded " + path)
}

func (p *Panel) setStatus(msg string) {
	p.status = msg
	p.statusTime = time.Now()
}
