// Package lighting holds the demo's fixed-function lighting model: one
// white directional light, one material, and a global ambient term. The
// shading equation mirrors the classic fixed pipeline:
//
//	color = emissive + ambient*globalAmbient + diffuse*lightDiffuse*max(dot(N, -L), 0)
//
// and is evaluated in the renderer's fragment shader with flat face
// normals. Shade below is the CPU reference of the same equation.
package lighting

import "github.com/ikep/ikep-logo/pkg/math"

// GlobalAmbient is the scene-wide ambient term (0x20 per channel).
var GlobalAmbient = math.Vec3{X: 32.0 / 255.0, Y: 32.0 / 255.0, Z: 32.0 / 255.0}

// Directional is a directional light. Direction points the way the
// light travels, not towards the light.
type Directional struct {
	Direction math.Vec3
	Diffuse   math.Vec3
}

// NewDirectional returns a directional light with the direction
// normalized.
func NewDirectional(dir, diffuse math.Vec3) Directional {
	return Directional{
		Direction: dir.Normalize(),
		Diffuse:   diffuse,
	}
}

// Material describes how a surface responds to light.
type Material struct {
	Diffuse  math.Vec3
	Ambient  math.Vec3
	Emissive math.Vec3
}

// PanelMaterial is the purple material every panel and quad uses.
func PanelMaterial() Material {
	c := math.Vec3{X: 0.3, Y: 0.1, Z: 0.5}
	return Material{Diffuse: c, Ambient: c, Emissive: c}
}

// Shade evaluates the lighting equation for a unit surface normal.
func (d Directional) Shade(m Material, ambient, normal math.Vec3) math.Vec3 {
	nl := normal.Dot(d.Direction.Scale(-1))
	if nl < 0 {
		nl = 0
	}
	return math.Vec3{
		X: m.Emissive.X + m.Ambient.X*ambient.X + m.Diffuse.X*d.Diffuse.X*nl,
		Y: m.Emissive.Y + m.Ambient.Y*ambient.Y + m.Diffuse.Y*d.Diffuse.Y*nl,
		Z: m.Emissive.Z + m.Ambient.Z*ambient.Z + m.Diffuse.Z*d.Diffuse.Z*nl,
	}
}
