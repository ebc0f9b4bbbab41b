package scene

import (
	"github.com/Faultbox/ragingsea/internal/surface"
)

// Uniform names shared by water.vert and water.frag.
const (
	UniformModel      = "uModel"
	UniformView       = "uView"
	UniformProjection = "uProjection"

	UniformTime                 = "uTime"
	UniformWavesElevation       = "uWavesElevation"
	UniformWavesFrequency       = "uWavesFrequency"
	UniformWavesSpeed           = "uWavesSpeed"
	UniformSmallWavesElevation  = "uSmallWavesElevation"
	UniformSmallWavesFrequency  = "uSmallWavesFrequency"
	UniformSmallWavesSpeed      = "uSmallWavesSpeed"
	UniformSmallWavesIterations = "uSmallWavesIterations"
	UniformDepthColor           = "uDepthColor"
	UniformSurfaceColor         = "uSurfaceColor"
	UniformColorOffset          = "uColorOffset"
	UniformColorMultiplier      = "uColorMultiplier"
)

// Uniform is one parameter value in upload form. Size is the GLSL component
// count: 1 for float, 2 for vec2, 3 for vec3.
type Uniform struct {
	Name  string
	Size  int
	Value [3]float32
}

// Uniforms flattens the parameter set into the shader's uniform contract.
// Iterations are uploaded as a float.
func Uniforms(p *surface.Params) []Uniform {
	return []Uniform{
		scalar(UniformTime, p.Time),
		scalar(UniformWavesElevation, p.WavesElevation),
		{Name: UniformWavesFrequency, Size: 2, Value: [3]float32{p.WavesFrequency.X, p.WavesFrequency.Y}},
		scalar(UniformWavesSpeed, p.WavesSpeed),
		scalar(UniformSmallWavesElevation, p.SmallWavesElevation),
		scalar(UniformSmallWavesFrequency, p.SmallWavesFrequency),
		scalar(UniformSmallWavesSpeed, p.SmallWavesSpeed),
		scalar(UniformSmallWavesIterations, float32(p.Iterations())),
		{Name: UniformDepthColor, Size: 3, Value: p.DepthColor.Array()},
		{Name: UniformSurfaceColor, Size: 3, Value: p.SurfaceColor.Array()},
		scalar(UniformColorOffset, p.ColorOffset),
		scalar(UniformColorMultiplier, p.ColorMultiplier),
	}
}

func scalar(name string, v float32) Uniform {
	return Uniform{Name: name, Size: 1, Value: [3]float32{v}}
}

// uniformNames lists every uniform the water program resolves.
func uniformNames() []string {
	names := []string{UniformModel, UniformView, UniformProjection}
	for _, u := range Uniforms(surface.Defaults()) {
		names = append(names, u.Name)
	}
	return names
}
