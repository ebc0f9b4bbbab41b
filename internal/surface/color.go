package surface

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a linear RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float32
}

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: want #rgb or #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return Color{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb". Channels outside [0, 1] are clamped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

// Lerp mixes c toward to by t, the GLSL mix() of two colors.
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
	}
}

// Array returns the channels as a vec3 for GL uniforms and ImGui pickers.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// NRGBA converts to an opaque 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 255}
}

// ColorFromArray is the inverse of Color.Array.
func ColorFromArray(a [3]float32) Color {
	return Color{R: a[0], G: a[1], B: a[2]}
}

func channel8(v float32) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
