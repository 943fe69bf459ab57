// Package camera provides the inertial rotation model that drives the scene view.
package camera

import (
	"fmt"
	gomath "math"
)

// PointerDragEvent is the per-frame pointer snapshot consumed by Step.
// DX and DY are the pixels moved while the primary button was held this frame;
// Dragging is the button state at the end of the frame.
type PointerDragEvent struct {
	Dragging bool
	DX, DY   float64
}

// Config holds the tuning constants of the rotation model.
type Config struct {
	// Deceleration multiplies both velocities on every idle frame. Must be in (0, 1).
	Deceleration float64
	// AutoRotation is added to RotX (degrees) on every idle frame.
	AutoRotation float64
	// DragDivisor converts pixels of drag into degrees/frame of velocity.
	DragDivisor float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Deceleration: 0.95,
		AutoRotation: 0.02,
		DragDivisor:  100,
	}
}

// Validate reports a descriptive error for unstable tuning.
func (c Config) Validate() error {
	if !(c.Deceleration > 0 && c.Deceleration < 1) {
		return fmt.Errorf("deceleration must be in (0, 1), got %g", c.Deceleration)
	}
	if !(c.DragDivisor > 0) {
		return fmt.Errorf("drag divisor must be positive, got %g", c.DragDivisor)
	}
	if gomath.IsNaN(c.AutoRotation) || gomath.IsInf(c.AutoRotation, 0) {
		return fmt.Errorf("auto rotation must be finite, got %g", c.AutoRotation)
	}
	return nil
}

// Inertial integrates two rotation angles (degrees) and their angular velocities
// (degrees per frame). It is advanced once per rendered frame and owned by the loop.
type Inertial struct {
	RotX, RotY float64
	VelX, VelY float64

	config Config
}

// NewInertial creates a camera at rest.
func NewInertial(cfg Config) (*Inertial, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Inertial{config: cfg}, nil
}

// Step advances the model by one frame.
//
// Drag movement feeds velocity. While the button is held nothing decays; when idle,
// velocity decays geometrically and the ambient spin is added to RotX on top of it.
// A drag released mid-frame keeps its movement and starts decaying the same frame.
func (c *Inertial) Step(ev PointerDragEvent) {
	c.VelX += ev.DY / c.config.DragDivisor
	c.VelY += ev.DX / c.config.DragDivisor

	if !ev.Dragging {
		c.VelX *= c.config.Deceleration
		c.VelY *= c.config.Deceleration
	}

	c.RotX += c.VelX
	c.RotY += c.VelY

	if !ev.Dragging {
		c.RotX += c.config.AutoRotation
	}
}

// Angles returns both rotations reduced to [0, 360).
// The accumulators themselves are never wrapped.
func (c *Inertial) Angles() (x, y float64) {
	return wrapDegrees(c.RotX), wrapDegrees(c.RotY)
}

// Reset stops all motion and returns to the initial orientation.
func (c *Inertial) Reset() {
	c.RotX, c.RotY = 0, 0
	c.VelX, c.VelY = 0, 0
}

func wrapDegrees(a float64) float64 {
	a = gomath.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
