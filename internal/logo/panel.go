package logo

// Axis selects the spin axis of a moving panel.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Panel is one of the twelve animated pieces. Several panels may share
// one Path (the E rows); each panel keeps its own position offset, spin
// parameters and trail bookkeeping.
type Panel struct {
	Name string

	path             *Path
	offsetX, offsetY float32

	SpinAxis Axis
	spinSign float32 // +1 or -1, direction of spin

	lastDrop float32 // spin magnitude at the last trail snapshot
	complete bool
}

func newPanel(name string, path *Path, offX, offY float32, axis Axis, sign float32) *Panel {
	return &Panel{
		Name:     name,
		path:     path,
		offsetX:  offX,
		offsetY:  offY,
		SpinAxis: axis,
		spinSign: sign,
	}
}

// Pose returns the panel's current position and tilt.
func (p *Panel) Pose() (x, y, tilt float32) {
	x, y, tilt = p.path.Pose()
	return x + p.offsetX, y + p.offsetY, tilt
}

// Complete reports whether the panel has finished its approach.
func (p *Panel) Complete() bool {
	return p.complete
}
