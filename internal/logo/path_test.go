package logo

import (
	"math"
	"testing"
)

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestLineAdvance(t *testing.T) {
	// I1 travels +X from -3 at 0.5 u/s.
	p := NewLine(-3, 1.5, 1, 0, true, -1.9, 0, 0.5)

	p.Advance(1.0)
	x, y, tilt := p.Pose()
	if absf(x+2.5) > 1e-5 {
		t.Errorf("x after 1s: got %f, want -2.5", x)
	}
	if y != 1.5 {
		t.Errorf("y should stay 1.5, got %f", y)
	}
	if tilt != 0 {
		t.Errorf("tilt should be 0, got %f", tilt)
	}
	if p.Done() {
		t.Error("path should not be done at x=-2.5")
	}
}

func TestLineCompletion(t *testing.T) {
	// 1.1 units at 0.5 u/s: done just past 2.2 s.
	p := NewLine(-3, 1.5, 1, 0, true, -1.9, 0, 0.5)

	for i := 0; i < 200; i++ {
		p.Advance(0.01)
	}
	if p.Done() {
		t.Error("path done too early at 2.0s")
	}
	for i := 0; i < 50; i++ {
		p.Advance(0.01)
	}
	if !p.Done() {
		t.Error("path should be done by 2.5s")
	}

	// Completed paths stop moving.
	x1, _, _ := p.Pose()
	p.Advance(1.0)
	x2, _, _ := p.Pose()
	if x1 != x2 {
		t.Errorf("completed path moved: %f -> %f", x1, x2)
	}
}

func TestLineNegativeDirection(t *testing.T) {
	// K1 travels -Y from 1.5 down past -1.7.
	p := NewLine(-1.3, 1.5, 0, -1, false, -1.7, 0, 0.5)

	for i := 0; i < 1000; i++ {
		p.Advance(0.01)
		if p.Done() {
			break
		}
	}
	if !p.Done() {
		t.Fatal("descending line never completed")
	}
	_, y, _ := p.Pose()
	if y > -1.7 {
		t.Errorf("done with y=%f, want below -1.7", y)
	}
}

func TestDiagonalLine(t *testing.T) {
	// K3 direction (1/2, -sqrt(3)/2) is unit; at 0.5 u/s the x rate is 0.25.
	p := NewLine(-1.1, 0.2, 0.5, -float32(math.Sqrt(3))/2, true, 0, -float32(math.Pi)/3, 0.5)

	p.Advance(2.0)
	x, y, tilt := p.Pose()
	if absf(x+0.6) > 1e-4 {
		t.Errorf("x after 2s: got %f, want -0.6", x)
	}
	wantY := float32(0.2 - math.Sqrt(3)/2)
	if absf(y-wantY) > 1e-4 {
		t.Errorf("y after 2s: got %f, want %f", y, wantY)
	}
	if absf(tilt+float32(math.Pi)/3) > 1e-5 {
		t.Errorf("tilt: got %f, want -pi/3", tilt)
	}
}

func TestArcPose(t *testing.T) {
	p := NewArc(2.3, 0.75, 0.85, float32(math.Pi)/2, 0.5)

	x, y, tilt := p.Pose()
	if absf(x-2.3) > 1e-5 || absf(y-1.6) > 1e-5 {
		t.Errorf("arc start: got (%f, %f), want (2.3, 1.6)", x, y)
	}
	if absf(tilt-float32(math.Pi)/2) > 1e-5 {
		t.Errorf("arc tilt should equal start angle, got %f", tilt)
	}

	// A quarter circle later (pi/2 rad at 0.5 rad/s = pi seconds) the
	// panel sits at the right of the bowl.
	p.Advance(float32(math.Pi))
	x, y, _ = p.Pose()
	if absf(x-3.15) > 1e-3 || absf(y-0.75) > 1e-3 {
		t.Errorf("arc quarter: got (%f, %f), want (3.15, 0.75)", x, y)
	}
}

func TestArcCompletion(t *testing.T) {
	// The arc sweeps just past a half circle: a bit more than pi rad at
	// 0.5 rad/s, so roughly 6.3 s.
	p := NewArc(2.3, 0.75, 0.85, float32(math.Pi)/2, 0.5)

	for i := 0; i < 625; i++ {
		p.Advance(0.01)
	}
	if p.Done() {
		t.Error("arc done before the half circle")
	}
	for i := 0; i < 50; i++ {
		p.Advance(0.01)
	}
	if !p.Done() {
		t.Error("arc should be done after sweeping past the half circle")
	}
}

func TestPathReset(t *testing.T) {
	line := NewLine(-3, 1.5, 1, 0, true, -1.9, 0, 0.5)
	arc := NewArc(2.3, 0.75, 0.85, float32(math.Pi)/2, 0.5)

	for i := 0; i < 700; i++ {
		line.Advance(0.01)
		arc.Advance(0.01)
	}
	if !line.Done() || !arc.Done() {
		t.Fatal("paths should be done before reset")
	}

	line.Reset()
	arc.Reset()

	if line.Done() || arc.Done() {
		t.Error("reset paths should not be done")
	}
	x, y, _ := line.Pose()
	if x != -3 || y != 1.5 {
		t.Errorf("reset line pose: got (%f, %f), want (-3, 1.5)", x, y)
	}
	x, y, tilt := arc.Pose()
	if absf(x-2.3) > 1e-5 || absf(y-1.6) > 1e-5 || absf(tilt-float32(math.Pi)/2) > 1e-5 {
		t.Errorf("reset arc pose: got (%f, %f, %f)", x, y, tilt)
	}
}
