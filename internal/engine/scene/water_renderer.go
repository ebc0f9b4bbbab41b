package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ragingsea/internal/engine/scene/shaders"
	"github.com/Faultbox/ragingsea/internal/engine/shader"
	"github.com/Faultbox/ragingsea/internal/engine/water"
	"github.com/Faultbox/ragingsea/internal/surface"
	"github.com/Faultbox/ragingsea/pkg/math"
)

// WaterRenderer draws the displaced water grid. It holds the live parameter
// set by pointer and uploads it on every Render.
type WaterRenderer struct {
	program *shader.Program
	params  *surface.Params

	// Mesh
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	model      math.Mat4
}

// NewWaterRenderer compiles the water program and uploads the grid.
func NewWaterRenderer(grid *water.Grid, params *surface.Params) (*WaterRenderer, error) {
	program, err := shader.NewProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader, uniformNames()...)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	wr := &WaterRenderer{
		program:    program,
		params:     params,
		indexCount: int32(len(grid.Indices)),
		model:      grid.ModelMatrix(),
	}
	wr.upload(grid)

	return wr, nil
}

func (wr *WaterRenderer) upload(grid *water.Grid) {
	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(grid.Vertices)*4, gl.Ptr(grid.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &wr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(grid.Indices)*4, gl.Ptr(grid.Indices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// Render draws the grid with the current parameter values.
func (wr *WaterRenderer) Render(view, proj math.Mat4) {
	if wr.vao == 0 {
		return
	}

	wr.program.Use()

	gl.UniformMatrix4fv(wr.program.Loc(UniformModel), 1, false, wr.model.Ptr())
	gl.UniformMatrix4fv(wr.program.Loc(UniformView), 1, false, view.Ptr())
	gl.UniformMatrix4fv(wr.program.Loc(UniformProjection), 1, false, proj.Ptr())

	for _, u := range Uniforms(wr.params) {
		loc := wr.program.Loc(u.Name)
		switch u.Size {
		case 1:
			gl.Uniform1f(loc, u.Value[0])
		case 2:
			gl.Uniform2f(loc, u.Value[0], u.Value[1])
		case 3:
			gl.Uniform3f(loc, u.Value[0], u.Value[1], u.Value[2])
		}
	}

	gl.BindVertexArray(wr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.ebo != 0 {
		gl.DeleteBuffers(1, &wr.ebo)
		wr.ebo = 0
	}
	if wr.program != nil {
		wr.program.Delete()
	}
}
