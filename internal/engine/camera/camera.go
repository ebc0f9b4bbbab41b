// Package camera provides the damped orbit camera used to inspect the sea.
package camera

import (
	gomath "math"

	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/pkg/math"
)

// settleEpsilon is how close the eased orientation must get before it snaps.
const settleEpsilon = 1e-4

// OrbitCamera orbits around a center point. Input moves a target orientation;
// Update eases the actual orientation toward it by Damping each frame.
type OrbitCamera struct {
	Center math.Vec3

	// Actual spherical coordinates
	Distance float32
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Where input wants the camera to be
	targetDistance float32
	targetPitch    float32
	targetYaw      float32

	// Fraction of the remaining gap closed per Update. 0 disables easing.
	Damping float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FOV    float32 // Vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	projection math.Mat4
}

// NewOrbitCamera creates a camera from its config, looking at the origin.
func NewOrbitCamera(cfg config.CameraConfig) *OrbitCamera {
	c := &OrbitCamera{
		Damping:         cfg.Damping,
		MinDistance:     0.2,
		MaxDistance:     50,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             cfg.FOV,
		Aspect:          1,
		Near:            cfg.Near,
		Far:             cfg.Far,
	}
	c.SetPosition(math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]})
	c.updateProjection()
	return c
}

// SetPosition places the camera at pos immediately, skipping any easing.
func (c *OrbitCamera) SetPosition(pos math.Vec3) {
	offset := pos.Sub(c.Center)
	d := offset.Length()
	if d == 0 {
		d = c.MinDistance
		offset = math.Vec3{Z: d}
	}

	c.Distance = math.Clamp(d, c.MinDistance, c.MaxDistance)
	c.Pitch = math.Clamp(float32(gomath.Asin(float64(offset.Y/d))), c.MinPitch, c.MaxPitch)
	c.Yaw = float32(gomath.Atan2(float64(offset.X), float64(offset.Z)))

	c.targetDistance, c.targetPitch, c.targetYaw = c.Distance, c.Pitch, c.Yaw
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the projection computed by the last SetAspect.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return c.projection
}

// SetAspect updates the aspect ratio and recomputes the projection.
// Degenerate ratios from a minimized window are ignored.
func (c *OrbitCamera) SetAspect(aspect float32) {
	if !(aspect > 0) || gomath.IsInf(float64(aspect), 0) {
		return
	}
	c.Aspect = aspect
	c.updateProjection()
}

func (c *OrbitCamera) updateProjection() {
	c.projection = math.Perspective(math.Radians(c.FOV), c.Aspect, c.Near, c.Far)
}

// HandleDrag rotates the target orientation by a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.targetYaw -= deltaX * c.DragSensitivity
	c.targetPitch = math.Clamp(c.targetPitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom changes the target distance by a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.targetDistance -= delta * c.targetDistance * c.ZoomSensitivity
	c.targetDistance = math.Clamp(c.targetDistance, c.MinDistance, c.MaxDistance)
}

// Update eases the actual orientation toward the target. Called once per
// frame before drawing.
func (c *OrbitCamera) Update() {
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Distance, c.Pitch, c.Yaw = c.targetDistance, c.targetPitch, c.targetYaw
		return
	}

	c.Distance = ease(c.Distance, c.targetDistance, c.Damping)
	c.Pitch = ease(c.Pitch, c.targetPitch, c.Damping)
	c.Yaw = ease(c.Yaw, c.targetYaw, c.Damping)
}

// Settled reports whether the camera has reached its target.
func (c *OrbitCamera) Settled() bool {
	return c.Distance == c.targetDistance && c.Pitch == c.targetPitch && c.Yaw == c.targetYaw
}

func ease(from, to, k float32) float32 {
	next := math.Lerp(from, to, k)
	if d := to - next; d < settleEpsilon && d > -settleEpsilon {
		return to
	}
	return next
}
