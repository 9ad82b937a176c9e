// Package demo wires the window, renderer, and choreography into the
// single-threaded render loop.
package demo

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/ikep/ikep-logo/internal/config"
	"github.com/ikep/ikep-logo/internal/engine/camera"
	"github.com/ikep/ikep-logo/internal/engine/debug"
	"github.com/ikep/ikep-logo/internal/engine/input"
	"github.com/ikep/ikep-logo/internal/engine/lighting"
	"github.com/ikep/ikep-logo/internal/engine/renderer"
	"github.com/ikep/ikep-logo/internal/engine/window"
	"github.com/ikep/ikep-logo/internal/logger"
	"github.com/ikep/ikep-logo/internal/logo"
	"github.com/ikep/ikep-logo/pkg/math"
)

// Scene placement. The camera sits below and in front of the logo
// plane looking back at the origin, and the light shines down and away
// from the camera into the scene.
var (
	cameraEye = math.Vec3{X: 0, Y: -5, Z: 5}
	lightDir  = math.Vec3{X: 0, Y: -0.5, Z: -1}
)

// Demo is the running application.
type Demo struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera

	light    lighting.Directional
	material lighting.Material

	sequence *logo.Sequence
	shots    *debug.ScreenshotCapture
}

// New creates the demo. The window must come first: the renderer needs
// its OpenGL context.
func New(cfg *config.Config) (*Demo, error) {
	logger.Info("initializing demo",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	d := &Demo{
		cfg: cfg,
	}

	var err error
	d.window, err = window.New(window.Config{
		Title:      "IKEP",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Render at the drawable size; it differs from the window size on
	// high-DPI displays.
	fbW, fbH := d.window.DrawableSize()
	d.renderer, err = renderer.New(renderer.Config{
		Width:  fbW,
		Height: fbH,
	})
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	d.input = input.New()

	d.camera = camera.New(
		cameraEye,
		math.Vec3{},
		float32(gomath.Pi/4),
		float32(cfg.Graphics.Width)/float32(cfg.Graphics.Height),
		1, 100,
	)

	d.light = lighting.NewDirectional(
		lightDir,
		math.Vec3{X: 1, Y: 1, Z: 1},
	)
	d.material = lighting.PanelMaterial()

	d.sequence = logo.New(logo.Config{
		Speed:       cfg.Animation.Speed,
		SpinRate:    cfg.Animation.SpinRate,
		HoldSeconds: cfg.Animation.HoldSeconds,
		TrailCap:    cfg.Animation.TrailCap,
	})

	d.shots = debug.NewScreenshotCapture(
		cfg.Debug.ScreenshotDir, "ikep", cfg.Debug.ScreenshotFormat)

	logger.Info("demo initialized")
	return d, nil
}

// Run drives the render loop until the window closes or ESC is pressed.
func (d *Demo) Run() error {
	d.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var minFrame time.Duration
	if d.cfg.Graphics.FPSLimit > 0 && !d.cfg.Graphics.VSync {
		minFrame = time.Second / time.Duration(d.cfg.Graphics.FPSLimit)
	}

	logger.Info("starting render loop")

	for d.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		if d.input.Update() {
			d.running = false
			break
		}

		for _, event := range d.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				d.handleResize(event.Width, event.Height)
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					d.running = false
				case sdl.SCANCODE_F12:
					d.captureScreenshot()
				}
			}
		}

		d.sequence.Advance(float32(dt))
		d.render()
		d.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("clock", d.sequence.Clock()),
				zap.Int("trail", len(d.sequence.TrailSnapshots())),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if remaining := minFrame - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}

	return nil
}

// Close releases resources in reverse acquisition order.
func (d *Demo) Close() {
	logger.Info("closing demo")

	if d.renderer != nil {
		d.renderer.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}

// render draws one frame: anchors, trail, then the moving panels.
func (d *Demo) render() {
	d.renderer.Begin()
	d.renderer.SetCamera(d.camera.ViewProj())
	d.renderer.SetLighting(d.light, d.material, lighting.GlobalAmbient)

	for _, a := range d.sequence.Anchors() {
		d.renderer.DrawQuad(quadModel(a))
	}
	for _, s := range d.sequence.TrailSnapshots() {
		d.renderer.DrawQuad(quadModel(s))
	}
	for _, p := range d.sequence.ActivePanels() {
		d.renderer.DrawPanel(panelModel(p))
	}
}

func (d *Demo) handleResize(width, height int) {
	fbW, fbH := d.window.DrawableSize()
	d.renderer.Resize(fbW, fbH)
	if height > 0 {
		d.camera.SetAspect(float32(width) / float32(height))
	}
}

func (d *Demo) captureScreenshot() {
	pixels, w, h := d.renderer.ReadPixels()
	name, err := d.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// quadModel places a flat quad: translate, then tilt about Z.
func quadModel(s logo.Snapshot) math.Mat4 {
	m := math.Translate(s.X, s.Y, 0)
	if s.Tilt != 0 {
		m = m.Mul(math.RotateZ(s.Tilt))
	}
	return m
}

// panelModel places a moving panel: translate, tilt about Z, then spin
// about the panel's axis.
func panelModel(p logo.PanelPose) math.Mat4 {
	spin := math.RotateY(p.Spin)
	if p.Axis == logo.AxisX {
		spin = math.RotateX(p.Spin)
	}
	m := math.Translate(p.X, p.Y, 0)
	if p.Tilt != 0 {
		m = m.Mul(math.RotateZ(p.Tilt))
	}
	return m.Mul(spin)
}
