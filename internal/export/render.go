package export

import (
	"image"
	"runtime"
	"sync"

	"github.com/Faultbox/ragingsea/internal/surface"
)

// Renderer draws the surface top-down on the CPU with the same height and
// color functions as the GPU shader.
type Renderer struct {
	surface *surface.Surface
	workers int

	// Extent is the half-size of the rendered square in world units.
	Extent float64
}

// NewRenderer creates a renderer. workers <= 0 uses GOMAXPROCS.
func NewRenderer(s *surface.Surface, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Renderer{surface: s, workers: workers, Extent: 1}
}

// Render returns a width x height image of the plane at p.Time. Rows are
// split into bands rendered concurrently; p is only read.
func (r *Renderer) Render(p *surface.Params, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	workers := min(r.workers, height)
	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(img, p, y0, y1)
		}(y0, y1)
	}
	wg.Wait()

	return img
}

func (r *Renderer) renderRows(img *image.NRGBA, p *surface.Params, y0, y1 int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for py := y0; py < y1; py++ {
		// Image top is -Z, matching the camera's default view from +Z.
		z := r.Extent * (2*(float64(py)+0.5)/float64(h) - 1)
		for px := 0; px < w; px++ {
			x := r.Extent * (2*(float64(px)+0.5)/float64(w) - 1)
			c := r.surface.Sample(p, x, z).Color.NRGBA()

			i := img.PixOffset(px, py)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
}
