// Package water builds the subdivided plane the water shader displaces.
package water

import (
	gomath "math"

	"github.com/Faultbox/ragingsea/pkg/math"
)

// Default plane dimensions.
const (
	DefaultSize     = 2.0
	DefaultSegments = 512
)

// Grid holds plane geometry ready for GPU upload. The plane is built in XY
// like any textbook plane and laid flat by ModelMatrix.
type Grid struct {
	Width, Depth         float32
	SegmentsX, SegmentsZ int

	Vertices []float32 // Flat array: x,y,z per vertex
	Indices  []uint32  // Two triangles per cell
}

// BuildGrid creates a width x depth plane centered on the origin with the
// given subdivisions. Segment counts below 1 are raised to 1.
func BuildGrid(width, depth float32, segmentsX, segmentsZ int) *Grid {
	segmentsX = max(segmentsX, 1)
	segmentsZ = max(segmentsZ, 1)

	g := &Grid{
		Width:     width,
		Depth:     depth,
		SegmentsX: segmentsX,
		SegmentsZ: segmentsZ,
		Vertices:  make([]float32, 0, (segmentsX+1)*(segmentsZ+1)*3),
		Indices:   make([]uint32, 0, segmentsX*segmentsZ*6),
	}

	cellW := width / float32(segmentsX)
	cellD := depth / float32(segmentsZ)

	// Rows run top to bottom so that after the -90 degree X rotation the
	// first row sits at -Z.
	for row := 0; row <= segmentsZ; row++ {
		y := depth/2 - float32(row)*cellD
		for col := 0; col <= segmentsX; col++ {
			x := float32(col)*cellW - width/2
			g.Vertices = append(g.Vertices, x, y, 0)
		}
	}

	stride := uint32(segmentsX + 1)
	for row := 0; row < segmentsZ; row++ {
		for col := 0; col < segmentsX; col++ {
			a := uint32(row)*stride + uint32(col)
			b := a + stride
			c := b + 1
			d := a + 1
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	return g
}

// Default builds the 2x2 plane with the given subdivision per side.
func Default(segments int) *Grid {
	return BuildGrid(DefaultSize, DefaultSize, segments, segments)
}

// VertexCount returns the number of vertices.
func (g *Grid) VertexCount() int {
	return len(g.Vertices) / 3
}

// ModelMatrix lays the plane into the XZ plane.
func (g *Grid) ModelMatrix() math.Mat4 {
	return math.RotateX(-gomath.Pi / 2)
}
