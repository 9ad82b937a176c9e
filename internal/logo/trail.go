package logo

// Snapshot is a static copy a panel leaves behind: position and tilt of
// the flat quad drawn at that spot every frame.
type Snapshot struct {
	X, Y, Tilt float32
}

// Trail is the capped store of dropped snapshots. Once the cap is
// reached further drops are silently ignored until the next reset.
type Trail struct {
	entries []Snapshot
	cap     int
}

// NewTrail returns an empty trail holding at most cap snapshots.
func NewTrail(cap int) *Trail {
	return &Trail{
		entries: make([]Snapshot, 0, cap),
		cap:     cap,
	}
}

// Add appends a snapshot. It reports whether the snapshot was stored;
// false means the trail is full.
func (t *Trail) Add(s Snapshot) bool {
	if len(t.entries) >= t.cap {
		return false
	}
	t.entries = append(t.entries, s)
	return true
}

// Snapshots returns the stored snapshots in drop order. The returned
// slice is only valid until the next Add or Reset.
func (t *Trail) Snapshots() []Snapshot {
	return t.entries
}

// Len returns the number of stored snapshots.
func (t *Trail) Len() int {
	return len(t.entries)
}

// Cap returns the maximum number of snapshots.
func (t *Trail) Cap() int {
	return t.cap
}

// Reset empties the trail.
func (t *Trail) Reset() {
	t.entries = t.entries[:0]
}
