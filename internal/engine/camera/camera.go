// Package camera provides the demo's fixed look-at camera.
package camera

import "github.com/ikep/ikep-logo/pkg/math"

// Camera is a stationary perspective camera. Only the aspect ratio
// changes at runtime, tracking window resizes.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FOV    float32 // vertical field of view, radians
	Near   float32
	Far    float32
	Aspect float32 // width / height
}

// New returns a camera looking from eye at target with the given
// projection parameters.
func New(eye, target math.Vec3, fov, aspect, near, far float32) *Camera {
	return &Camera{
		Eye:    eye,
		Target: target,
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:    fov,
		Near:   near,
		Far:    far,
		Aspect: aspect,
	}
}

// SetAspect updates the aspect ratio (width / height).
func (c *Camera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjMatrix returns the perspective projection.
func (c *Camera) ProjMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProj returns the combined projection * view transform.
func (c *Camera) ViewProj() math.Mat4 {
	return c.ProjMatrix().Mul(c.ViewMatrix())
}
