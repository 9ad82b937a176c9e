// Package renderer owns the OpenGL pipeline for the logo demo: one
// shader program, the panel and quad vertex buffers, and the per-frame
// draw calls.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/ikep/ikep-logo/internal/engine/geometry"
	"github.com/ikep/ikep-logo/internal/engine/lighting"
	"github.com/ikep/ikep-logo/internal/engine/shader"
	"github.com/ikep/ikep-logo/internal/logger"
	"github.com/ikep/ikep-logo/pkg/math"
)

// The panels carry no vertex normals; the fragment shader derives a
// flat face normal from screen-space derivatives, which also makes the
// thin panels two-sided while they spin.
const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	gl_Position = uViewProj * world;
}
`

const fragmentShaderSource = `
#version 410 core

in vec3 vWorldPos;
out vec4 FragColor;

uniform vec3 uLightDir;     // direction the light travels, normalized
uniform vec3 uLightDiffuse;
uniform vec3 uGlobalAmbient;
uniform vec3 uMatDiffuse;
uniform vec3 uMatAmbient;
uniform vec3 uMatEmissive;

void main() {
	vec3 n = normalize(cross(dFdx(vWorldPos), dFdy(vWorldPos)));
	float nl = max(dot(n, -uLightDir), 0.0);
	vec3 color = uMatEmissive
		+ uMatAmbient * uGlobalAmbient
		+ uMatDiffuse * uLightDiffuse * nl;
	FragColor = vec4(color, 1.0);
}
`

// Half extent of both meshes.
const meshHalfExtent = 0.1

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program uint32

	// Uniform locations
	locModel         int32
	locViewProj      int32
	locLightDir      int32
	locLightDiffuse  int32
	locGlobalAmbient int32
	locMatDiffuse    int32
	locMatAmbient    int32
	locMatEmissive   int32

	panelVAO uint32
	panelVBO uint32
	quadVAO  uint32
	quadVBO  uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Depth test on, culling off: the strip panels are meant to be
	// visible from both sides while they spin.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program

	r.locModel = shader.GetUniform(program, "uModel")
	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locLightDiffuse = shader.GetUniform(program, "uLightDiffuse")
	r.locGlobalAmbient = shader.GetUniform(program, "uGlobalAmbient")
	r.locMatDiffuse = shader.GetUniform(program, "uMatDiffuse")
	r.locMatAmbient = shader.GetUniform(program, "uMatAmbient")
	r.locMatEmissive = shader.GetUniform(program, "uMatEmissive")

	r.panelVAO, r.panelVBO = createMesh(geometry.PanelStrip(meshHalfExtent))
	r.quadVAO, r.quadVBO = createMesh(geometry.QuadStrip(meshHalfExtent))

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.panelVAO != 0 {
		gl.DeleteVertexArrays(1, &r.panelVAO)
	}
	if r.panelVBO != 0 {
		gl.DeleteBuffers(1, &r.panelVBO)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
}

// SetCamera uploads the combined view-projection matrix for the frame.
func (r *Renderer) SetCamera(viewProj math.Mat4) {
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
}

// SetLighting uploads the light, material, and global ambient uniforms.
func (r *Renderer) SetLighting(light lighting.Directional, mat lighting.Material, ambient math.Vec3) {
	gl.Uniform3f(r.locLightDir, light.Direction.X, light.Direction.Y, light.Direction.Z)
	gl.Uniform3f(r.locLightDiffuse, light.Diffuse.X, light.Diffuse.Y, light.Diffuse.Z)
	gl.Uniform3f(r.locGlobalAmbient, ambient.X, ambient.Y, ambient.Z)
	gl.Uniform3f(r.locMatDiffuse, mat.Diffuse.X, mat.Diffuse.Y, mat.Diffuse.Z)
	gl.Uniform3f(r.locMatAmbient, mat.Ambient.X, mat.Ambient.Y, mat.Ambient.Z)
	gl.Uniform3f(r.locMatEmissive, mat.Emissive.X, mat.Emissive.Y, mat.Emissive.Z)
}

// DrawPanel draws the cube-shell strip with the given model transform.
func (r *Renderer) DrawPanel(model math.Mat4) {
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.BindVertexArray(r.panelVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, geometry.PanelStripVertexCount)
	gl.BindVertexArray(0)
}

// DrawQuad draws the flat quad with the given model transform.
func (r *Renderer) DrawQuad(model math.Mat4) {
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, geometry.QuadStripVertexCount)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as tightly packed RGBA bytes, bottom
// row first (OpenGL origin).
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		// Minimized window: nothing to read.
		return nil, w, h
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// createMesh uploads position-only vertex data into a fresh VAO/VBO pair.
func createMesh(vertices []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh created",
		zap.Uint32("vao", vao),
		zap.Uint32("vbo", vbo),
		zap.Int("vertices", len(vertices)/3),
	)
	return vao, vbo
}
