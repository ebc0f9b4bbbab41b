package surface

import "github.com/Faultbox/ragingsea/internal/logger"

// ControlKind selects the widget a Control is bound to.
type ControlKind int

const (
	KindFloat ControlKind = iota
	KindInt
	KindColor
)

// Control describes one debug panel widget bound directly to Params storage.
type Control struct {
	Name string
	Kind ControlKind

	Min, Max, Step float32

	Float *float32 // KindFloat
	Int   *int32   // KindInt
	Color *Color   // KindColor, the live value
	Hex   *string  // KindColor, the text the widget edits
}

// Controls is the ordered panel layout.
type Controls []*Control

// Bind returns one control per tunable field of p.
func Bind(p *Params) Controls {
	return Controls{
		floatControl("uWavesElevation", &p.WavesElevation, 0, 1, 0.01),
		floatControl("uWavesFrequency X", &p.WavesFrequency.X, 0, 10, 0.01),
		floatControl("uWavesFrequency Y", &p.WavesFrequency.Y, 0, 10, 0.01),
		floatControl("uWavesSpeed", &p.WavesSpeed, 0, 4, 0.01),
		floatControl("uSmallWavesElevation", &p.SmallWavesElevation, 0, 1, 0.01),
		floatControl("uSmallWavesFrequency", &p.SmallWavesFrequency, 0, 30, 0.01),
		{Name: "uSmallWavesIterations", Kind: KindInt, Min: 0, Max: MaxIterations, Step: 1, Int: &p.SmallWavesIterations},
		floatControl("uSmallWavesSpeed", &p.SmallWavesSpeed, 0, 4, 0.01),
		colorControl("depthColor", &p.DepthColor),
		colorControl("surfaceColor", &p.SurfaceColor),
		floatControl("uColorOffset", &p.ColorOffset, 0, 4, 0.01),
		floatControl("uColorMultiplier", &p.ColorMultiplier, 0, 10, 0.01),
	}
}

func floatControl(name string, v *float32, lo, hi, step float32) *Control {
	return &Control{Name: name, Kind: KindFloat, Min: lo, Max: hi, Step: step, Float: v}
}

func colorControl(name string, c *Color) *Control {
	hex := c.Hex()
	return &Control{Name: name, Kind: KindColor, Color: c, Hex: &hex}
}

// Lookup finds a control by name.
func (cs Controls) Lookup(name string) (*Control, bool) {
	for _, c := range cs {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Sync refreshes every hex buffer from its bound color, e.g. after a reset.
func (cs Controls) Sync() {
	for _, c := range cs {
		if c.Kind == KindColor {
			*c.Hex = c.Color.Hex()
		}
	}
}

// SetFloat stores v clamped to the control bounds.
func (c *Control) SetFloat(v float32) {
	*c.Float = clamp(v, c.Min, c.Max)
}

// SetInt stores v clamped to the control bounds.
func (c *Control) SetInt(v int32) {
	*c.Int = int32(clamp(float32(v), c.Min, c.Max))
}

// SetHex stores the hex text and, if it parses, overwrites the bound color in
// place. A malformed value leaves the color untouched.
func (c *Control) SetHex(hex string) error {
	*c.Hex = hex
	return c.OnChange()
}

// OnChange propagates the hex buffer into the bound color.
func (c *Control) OnChange() error {
	col, err := ParseHex(*c.Hex)
	if err != nil {
		logger.Sugar.Warnf("ignoring %s edit: %v", c.Name, err)
		return err
	}
	*c.Color = col
	return nil
}

// Clamp pulls the bound value back inside [Min, Max]; widgets that allow
// typed input can overshoot.
func (c *Control) Clamp() {
	switch c.Kind {
	case KindFloat:
		c.SetFloat(*c.Float)
	case KindInt:
		c.SetInt(*c.Int)
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
