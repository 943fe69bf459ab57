// Package app implements the main loop that ties input, camera and scene together.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/blackhole/internal/config"
	"github.com/Faultbox/blackhole/internal/engine/camera"
	"github.com/Faultbox/blackhole/internal/engine/debug"
	"github.com/Faultbox/blackhole/internal/engine/input"
	"github.com/Faultbox/blackhole/internal/engine/lighting"
	"github.com/Faultbox/blackhole/internal/engine/renderer"
	"github.com/Faultbox/blackhole/internal/engine/starfield"
	"github.com/Faultbox/blackhole/internal/engine/window"
	"github.com/Faultbox/blackhole/internal/logger"
	"github.com/Faultbox/blackhole/internal/scene"
)

// App is the running visualization.
type App struct {
	config     *config.Config
	running    bool
	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	drag       *camera.DragTracker
	camera     *camera.Inertial
	scene      *scene.Scene
	screenshot *debug.ScreenshotCapture
}

// New builds the scene and opens the window.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		config: cfg,
		input:  input.New(),
		drag:   camera.NewDragTracker(),
		screenshot: debug.NewScreenshotCapture(
			cfg.Screenshot.Dir,
			cfg.Screenshot.Prefix,
			debug.Format(cfg.Screenshot.Format),
			cfg.Screenshot.Scale,
		),
	}

	// Geometry and camera first: bad settings fail before a window appears.
	var err error
	a.camera, err = camera.NewInertial(camera.Config{
		Deceleration: cfg.Camera.Deceleration,
		AutoRotation: cfg.Camera.AutoRotation,
		DragDivisor:  cfg.Camera.DragDivisor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	a.scene, err = scene.New(cfg.View, cfg.Scene, starfield.NewSource(cfg.Scene.Stars.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:    width,
		Height:   height,
		LightDir: lighting.SunDirection(cfg.Lighting.Longitude, cfg.Lighting.Latitude),
		Ambient:  cfg.Lighting.Ambient,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("initialized successfully")
	return a, nil
}

// Run drives frames until a quit request.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop", zap.Duration("frameDelay", a.config.Graphics.FrameDelay))

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents(a.input.Events())

		a.camera.Step(a.drag.Frame())

		a.renderer.Begin()
		width, height := a.renderer.Size()
		a.scene.Render(a.renderer, a.camera, width, height)
		a.renderer.End()

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.captureScreenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			logger.Debug("frame stats",
				zap.Float64("fps", float64(frameCount)/elapsed.Seconds()),
				zap.Float64("rotX", a.camera.RotX),
				zap.Float64("rotY", a.camera.RotY),
				zap.Float64("velX", a.camera.VelX),
				zap.Float64("velY", a.camera.VelY),
				zap.Bool("dragging", a.drag.Dragging()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if d := a.config.Graphics.FrameDelay; d > 0 {
			time.Sleep(d)
		}
	}

	return nil
}

// handleEvents routes one frame of input to the window, drag tracker and hotkeys.
func (a *App) handleEvents(events []input.Event) {
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())

		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_R:
				a.camera.Reset()
				logger.Debug("camera reset")
			}

		case input.EventMouseDown:
			if e.Button == input.ButtonPrimary {
				a.drag.Press(e.MouseX, e.MouseY)
			}

		case input.EventMouseMove:
			a.drag.Move(e.MouseX, e.MouseY)

		case input.EventMouseUp:
			if e.Button == input.ButtonPrimary {
				a.drag.Release()
			}
		}
	}
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources, then the window.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
