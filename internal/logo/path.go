// Package logo implements the IKEP logo assembly choreography: twelve
// panels travel along fixed trajectories, dropping static snapshots into
// a trail until every panel has reached its target, then the whole scene
// holds and resets. The package is pure state; rendering lives elsewhere.
package logo

import "github.com/chewxy/math32"

type pathKind int

const (
	kindLine pathKind = iota
	kindArc
)

// Path is the travel state of one panel trajectory. A path is either a
// straight line (origin, unit direction, limit on the driving coordinate)
// or a circular arc. Paths may be shared between panels; the E-row panels
// advance on a single path.
type Path struct {
	kind pathKind

	// Line parameters.
	originX, originY float32
	dirX, dirY       float32
	tilt             float32 // fixed Z rotation while traveling
	driveX           bool    // completion is tested on x (otherwise y)
	limit            float32

	// Arc parameters. The angle decreases at the travel speed in rad/s.
	centerX, centerY float32
	radius           float32
	startAngle       float32

	speed float32

	// State.
	dist  float32 // line: distance traveled from origin
	angle float32 // arc: current angle
	done  bool
}

// NewLine returns a straight-line path. dx/dy must be a unit direction;
// the path completes once the driving coordinate passes limit in the
// direction of travel.
func NewLine(x, y, dx, dy float32, driveX bool, limit, tilt, speed float32) *Path {
	return &Path{
		kind:    kindLine,
		originX: x,
		originY: y,
		dirX:    dx,
		dirY:    dy,
		driveX:  driveX,
		limit:   limit,
		tilt:    tilt,
		speed:   speed,
	}
}

// NewArc returns a circular-arc path starting at startAngle and sweeping
// clockwise (decreasing angle) at speed rad/s. The arc completes once
// cos(angle) drops below -0.01, just past the half circle.
func NewArc(cx, cy, radius, startAngle, speed float32) *Path {
	return &Path{
		kind:       kindArc,
		centerX:    cx,
		centerY:    cy,
		radius:     radius,
		startAngle: startAngle,
		angle:      startAngle,
		speed:      speed,
	}
}

// Advance moves the path forward by dt seconds. Completed paths do not
// move any further.
func (p *Path) Advance(dt float32) {
	if p.done {
		return
	}

	switch p.kind {
	case kindLine:
		p.dist += p.speed * dt
		x, y, _ := p.Pose()
		coord := y
		dir := p.dirY
		if p.driveX {
			coord = x
			dir = p.dirX
		}
		if dir > 0 && coord > p.limit {
			p.done = true
		} else if dir < 0 && coord < p.limit {
			p.done = true
		}

	case kindArc:
		p.angle -= p.speed * dt
		if math32.Cos(p.angle) < -0.01 {
			p.done = true
		}
	}
}

// Pose returns the current position and tilt (Z rotation). For arcs the
// tilt is the current arc angle, which keeps the panel tangent to the
// curve it sweeps.
func (p *Path) Pose() (x, y, tilt float32) {
	switch p.kind {
	case kindArc:
		x = p.centerX + p.radius*math32.Cos(p.angle)
		y = p.centerY + p.radius*math32.Sin(p.angle)
		tilt = p.angle
	default:
		x = p.originX + p.dirX*p.dist
		y = p.originY + p.dirY*p.dist
		tilt = p.tilt
	}
	return
}

// Done reports whether the path has reached its completion condition.
func (p *Path) Done() bool {
	return p.done
}

// Reset returns the path to its starting state.
func (p *Path) Reset() {
	p.dist = 0
	p.angle = p.startAngle
	p.done = false
}
