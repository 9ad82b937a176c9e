package logo

import "github.com/chewxy/math32"

// quarterTurn is the spin advance between two trail snapshots.
const quarterTurn = math32.Pi / 2

// Config holds the tunable animation parameters.
type Config struct {
	Speed       float32 // travel speed, units/s
	SpinRate    float32 // panel spin, rad/s
	HoldSeconds float32 // pause after completion before reset
	TrailCap    int     // maximum trail snapshots
}

// DefaultConfig returns the stock demo timing.
func DefaultConfig() Config {
	return Config{
		Speed:       0.5,
		SpinRate:    4.0,
		HoldSeconds: 5.0,
		TrailCap:    1000,
	}
}

// PanelPose is the render-ready state of one moving panel.
type PanelPose struct {
	Name string
	X, Y float32
	Tilt float32 // Z rotation
	Spin float32 // signed rotation about Axis
	Axis Axis
}

// anchors are the five quads drawn at fixed positions every frame, the
// parts of the logo that never move.
var anchors = []Snapshot{
	{X: -3.0, Y: 1.5},
	{X: -3.0, Y: -1.5},
	{X: -1.3, Y: 1.5},
	{X: 0.5, Y: 1.5},
	{X: 2.3, Y: 1.5},
}

// Sequence owns the full choreography: the twelve panels, their paths,
// the trail, and the hold/reset cycle. It is driven purely by Advance;
// there is no internal clock source.
type Sequence struct {
	cfg Config

	clock float32 // monotonic, never reset

	paths  []*Path
	panels []*Panel
	trail  *Trail

	holding   bool
	holdStart float32
}

// New builds the sequence in its initial state.
func New(cfg Config) *Sequence {
	s := &Sequence{
		cfg:   cfg,
		trail: NewTrail(cfg.TrailCap),
	}
	s.build()
	return s
}

// build lays out the choreography. Positions, limits, and tilts come
// from the hand-tuned logo layout; all travel shares one speed.
func (s *Sequence) build() {
	v := s.cfg.Speed
	invSqrt2 := 1 / math32.Sqrt(2)
	halfSqrt3 := math32.Sqrt(3) / 2

	i1 := NewLine(-3.0, 1.5, 1, 0, true, -1.9, 0, v)
	i2 := NewLine(-2.5, 1.5, 0, -1, false, -1.5, 0, v)
	i3 := NewLine(-3.0, -1.5, 1, 0, true, -1.9, 0, v)
	k1 := NewLine(-1.3, 1.5, 0, -1, false, -1.7, 0, v)
	k2 := NewLine(-1.3, 0.0, invSqrt2, invSqrt2, true, 0, math32.Pi/4, v)
	k3 := NewLine(-1.1, 0.2, 0.5, -halfSqrt3, true, 0, -math32.Pi/3, v)
	e1 := NewLine(0.5, 1.5, 0, -1, false, -1.5, 0, v)
	eRow := NewLine(0.5, 1.5, 1, 0, true, 1.8, 0, v)
	p1 := NewLine(2.3, 1.5, 0, -1, false, -1.7, 0, v)
	p2 := NewArc(2.3, 0.75, 0.85, math32.Pi/2, v)

	s.paths = []*Path{i1, i2, i3, k1, k2, k3, e1, eRow, p1, p2}
	s.panels = []*Panel{
		newPanel("I1", i1, 0, 0, AxisY, -1),
		newPanel("I2", i2, 0, 0, AxisX, -1),
		newPanel("I3", i3, 0, 0, AxisY, -1),
		newPanel("K1", k1, 0, 0, AxisX, -1),
		newPanel("K2", k2, 0, 0, AxisY, -1),
		newPanel("K3", k3, 0, 0, AxisY, 1),
		newPanel("E1", e1, 0, 0, AxisX, -1),
		newPanel("E2", eRow, 0, 0, AxisY, -1),
		newPanel("E3", eRow, 0, -1.5, AxisY, -1),
		newPanel("E4", eRow, 0, -3.0, AxisY, -1),
		newPanel("P1", p1, 0, 0, AxisX, -1),
		newPanel("P2", p2, 0, 0, AxisX, -1),
	}
}

// Advance steps the choreography by dt seconds: move every live path,
// mark completions, drop quarter-turn snapshots, and run the hold/reset
// cycle once all twelve panels are in place.
func (s *Sequence) Advance(dt float32) {
	s.clock += dt

	if s.holding {
		if s.clock-s.holdStart >= s.cfg.HoldSeconds {
			s.reset()
		}
		return
	}

	for _, p := range s.paths {
		p.Advance(dt)
	}

	spin := s.cfg.SpinRate * s.clock
	for _, pn := range s.panels {
		if pn.complete {
			continue
		}
		if pn.path.Done() {
			pn.complete = true
			continue
		}
		if spin-pn.lastDrop >= quarterTurn {
			x, y, tilt := pn.Pose()
			s.trail.Add(Snapshot{X: x, Y: y, Tilt: tilt})
			pn.lastDrop = spin
		}
	}

	if s.Complete() {
		s.holding = true
		s.holdStart = s.clock
	}
}

// reset restores the initial choreography. The clock keeps running; the
// panels' snapshot bookkeeping is re-seeded to the current spin angle so
// drops resume on cadence rather than all at once.
func (s *Sequence) reset() {
	for _, p := range s.paths {
		p.Reset()
	}
	spin := s.cfg.SpinRate * s.clock
	for _, pn := range s.panels {
		pn.complete = false
		pn.lastDrop = spin
	}
	s.trail.Reset()
	s.holding = false
}

// ActivePanels returns the poses of panels still in flight, in a stable
// order. Completed panels are omitted; their trail stays.
func (s *Sequence) ActivePanels() []PanelPose {
	spin := s.cfg.SpinRate * s.clock
	poses := make([]PanelPose, 0, len(s.panels))
	for _, pn := range s.panels {
		if pn.complete {
			continue
		}
		x, y, tilt := pn.Pose()
		poses = append(poses, PanelPose{
			Name: pn.Name,
			X:    x,
			Y:    y,
			Tilt: tilt,
			Spin: pn.spinSign * spin,
			Axis: pn.SpinAxis,
		})
	}
	return poses
}

// TrailSnapshots returns the dropped snapshots in drop order.
func (s *Sequence) TrailSnapshots() []Snapshot {
	return s.trail.Snapshots()
}

// Anchors returns the five fixed quads.
func (s *Sequence) Anchors() []Snapshot {
	return anchors
}

// Complete reports whether all twelve panels have finished.
func (s *Sequence) Complete() bool {
	for _, pn := range s.panels {
		if !pn.complete {
			return false
		}
	}
	return true
}

// Holding reports whether the sequence is in its post-completion pause.
func (s *Sequence) Holding() bool {
	return s.holding
}

// Clock returns the elapsed sequence time in seconds.
func (s *Sequence) Clock() float32 {
	return s.clock
}
