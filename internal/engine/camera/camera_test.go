package camera

import (
	gomath "math"
	"testing"

	"github.com/ikep/ikep-logo/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func demoCamera() *Camera {
	return New(
		math.Vec3{X: 0, Y: -5, Z: 5},
		math.Vec3{},
		float32(gomath.Pi/4), 1.6, 1, 100,
	)
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := demoCamera()
	v := c.ViewMatrix()

	got := v.TransformPoint([3]float32{c.Eye.X, c.Eye.Y, c.Eye.Z})
	for i, x := range got {
		if abs(x) > 1e-4 {
			t.Errorf("eye component %d in view space: got %f, want 0", i, x)
		}
	}
}

func TestTargetCenteredInClipSpace(t *testing.T) {
	c := demoCamera()
	vp := c.ViewProj()

	// The look target projects to the center of the screen.
	got := vp.TransformPoint([3]float32{0, 0, 0})
	if abs(got[0]) > 1e-4 || abs(got[1]) > 1e-4 {
		t.Errorf("target NDC: got (%f, %f), want (0, 0)", got[0], got[1])
	}
}

func TestSetAspect(t *testing.T) {
	c := demoCamera()

	c.SetAspect(2.0)
	if c.Aspect != 2.0 {
		t.Errorf("aspect: got %f, want 2.0", c.Aspect)
	}

	// Zero or negative aspect (minimized window) is ignored.
	c.SetAspect(0)
	if c.Aspect != 2.0 {
		t.Errorf("zero aspect should be ignored, got %f", c.Aspect)
	}

	// Widening the aspect shrinks projected x.
	narrow := New(math.Vec3{Z: -5}, math.Vec3{}, float32(gomath.Pi/4), 1.0, 1, 100)
	wide := New(math.Vec3{Z: -5}, math.Vec3{}, float32(gomath.Pi/4), 2.0, 1, 100)
	pn := narrow.ViewProj().TransformPoint([3]float32{1, 0, 0})
	pw := wide.ViewProj().TransformPoint([3]float32{1, 0, 0})
	if abs(pw[0]) >= abs(pn[0]) {
		t.Errorf("wider aspect should shrink x: %f vs %f", pw[0], pn[0])
	}
}

func TestProjMatrixIsPerspective(t *testing.T) {
	m := demoCamera().ProjMatrix()
	if m[11] != -1 {
		t.Errorf("projection [11]: got %f, want -1", m[11])
	}
	if m[15] != 0 {
		t.Errorf("projection [15]: got %f, want 0", m[15])
	}
}
