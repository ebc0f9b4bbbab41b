package viewport

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProjector struct {
	calls  int
	aspect float32
}

func (f *fakeProjector) SetAspect(a float32) {
	f.calls++
	f.aspect = a
}

type fakeTarget struct {
	calls         int
	width, height int32
}

func (f *fakeTarget) Resize(w, h int32) {
	f.calls++
	f.width, f.height = w, h
}

func TestClampPixelRatio(t *testing.T) {
	tests := []struct {
		name string
		dpr  float32
		want float32
	}{
		{"standard", 1, 1},
		{"retina", 2, 2},
		{"capped", 3, 2},
		{"fractional", 1.5, 1.5},
		{"zero", 0, 1},
		{"negative", -2, 1},
		{"nan", float32(gomath.NaN()), 1},
		{"infinite", float32(gomath.Inf(1)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPixelRatio(tt.dpr, 2))
		})
	}
}

func TestResizePropagates(t *testing.T) {
	proj := &fakeProjector{}
	target := &fakeTarget{}
	v := New(proj, target, 2)

	v.Resize(1280, 720, 3)

	assert.Equal(t, float32(1280.0/720.0), proj.aspect)
	assert.Equal(t, float32(2), v.PixelRatio)
	assert.Equal(t, int32(2560), target.width)
	assert.Equal(t, int32(1440), target.height)
}

func TestResizeIdempotent(t *testing.T) {
	proj := &fakeProjector{}
	target := &fakeTarget{}
	v := New(proj, target, 2)

	v.Resize(800, 600, 1)
	aspect, w, h := proj.aspect, target.width, target.height
	v.Resize(800, 600, 1)

	assert.Equal(t, aspect, proj.aspect)
	assert.Equal(t, w, target.width)
	assert.Equal(t, h, target.height)
	assert.Equal(t, 800, v.Width)
	assert.Equal(t, 600, v.Height)
}

func TestResizeZeroAreaNotPropagated(t *testing.T) {
	proj := &fakeProjector{}
	target := &fakeTarget{}
	v := New(proj, target, 2)

	v.Resize(0, 600, 1)

	assert.Zero(t, proj.calls)
	assert.Zero(t, target.calls)
	assert.Equal(t, float32(1), v.Aspect())
}

func TestNewDefaultsMaxRatio(t *testing.T) {
	v := New(nil, nil, 0)
	assert.Equal(t, float32(DefaultMaxPixelRatio), v.MaxPixelRatio)

	// nil collaborators are allowed
	v.Resize(10, 10, 1)
	w, h := v.BufferSize()
	assert.Equal(t, int32(10), w)
	assert.Equal(t, int32(10), h)
}
