package geometry

import "testing"

func TestPanelStrip(t *testing.T) {
	verts := PanelStrip(0.1)

	if len(verts) != PanelStripVertexCount*3 {
		t.Fatalf("vertex count: got %d floats, want %d", len(verts), PanelStripVertexCount*3)
	}

	// Every coordinate is on the shell: +-half or on the mid plane.
	for i, v := range verts {
		if v != 0.1 && v != -0.1 && v != 0 {
			t.Errorf("coordinate %d out of shell: %f", i, v)
		}
	}

	// First vertex is the near-bottom-left corner, last sits on the
	// mid plane.
	if verts[0] != -0.1 || verts[1] != -0.1 || verts[2] != -0.1 {
		t.Errorf("first vertex: got (%f, %f, %f)", verts[0], verts[1], verts[2])
	}
	last := verts[len(verts)-3:]
	if last[0] != -0.1 || last[1] != -0.1 || last[2] != 0 {
		t.Errorf("last vertex: got (%f, %f, %f)", last[0], last[1], last[2])
	}
}

func TestPanelStripScales(t *testing.T) {
	small := PanelStrip(0.1)
	big := PanelStrip(0.5)

	for i := range small {
		if small[i]*5 != big[i] {
			t.Fatalf("coordinate %d does not scale: %f vs %f", i, small[i], big[i])
		}
	}
}

func TestQuadStrip(t *testing.T) {
	verts := QuadStrip(0.1)

	if len(verts) != QuadStripVertexCount*3 {
		t.Fatalf("vertex count: got %d floats, want %d", len(verts), QuadStripVertexCount*3)
	}

	// The quad lies flat in the XY plane.
	for i := 2; i < len(verts); i += 3 {
		if verts[i] != 0 {
			t.Errorf("vertex %d has z=%f, want 0", i/3, verts[i])
		}
	}

	// All four corners are distinct.
	seen := map[[2]float32]bool{}
	for i := 0; i < len(verts); i += 3 {
		seen[[2]float32{verts[i], verts[i+1]}] = true
	}
	if len(seen) != 4 {
		t.Errorf("quad corners: got %d distinct, want 4", len(seen))
	}
}
