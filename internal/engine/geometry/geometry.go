// Package geometry builds the demo's two static vertex arrays as flat
// position data ready for upload into a VBO.
package geometry

// PanelStrip returns the moving panel's cube-shell triangle strip: 20
// vertices (18 triangles) wrapping a box of the given half extent. The
// strip ends on the mid plane, closing the shell against the flat quad.
func PanelStrip(half float32) []float32 {
	l := half
	return []float32{
		-l, -l, -l,
		-l, l, -l,
		l, -l, -l,
		l, l, -l,
		l, -l, l,
		l, l, l,
		-l, -l, l,
		-l, l, l,
		-l, -l, -l,
		-l, l, -l,
		l, l, -l,
		l, l, l,
		-l, l, l,
		-l, l, -l,
		-l, -l, -l,
		l, -l, -l,
		l, -l, l,
		-l, -l, l,
		-l, -l, -l,
		-l, -l, 0,
	}
}

// PanelStripVertexCount is the number of vertices PanelStrip emits.
const PanelStripVertexCount = 20

// QuadStrip returns a flat quad in the XY plane as a 4-vertex triangle
// strip with the given half extent.
func QuadStrip(half float32) []float32 {
	l := half
	return []float32{
		-l, -l, 0,
		-l, l, 0,
		l, l, 0,
		l, -l, 0,
	}
}

// QuadStripVertexCount is the number of vertices QuadStrip emits.
const QuadStripVertexCount = 4
