package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/blackhole/internal/engine/geometry"
	"github.com/Faultbox/blackhole/internal/logger"
)

// Validate rejects settings that would produce degenerate geometry or an
// unstable camera. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	g := c.Graphics
	check(g.Width > 0, "graphics.width must be positive, got %d", g.Width)
	check(g.Height > 0, "graphics.height must be positive, got %d", g.Height)
	check(g.FrameDelay >= 0, "graphics.frame_delay must not be negative, got %s", g.FrameDelay)

	v := c.View
	check(v.FOV > 0 && v.FOV < 180, "view.fov must be in (0, 180), got %g", v.FOV)
	check(v.Near > 0, "view.near must be positive, got %g", v.Near)
	check(v.Far > v.Near, "view.far (%g) must be greater than view.near (%g)", v.Far, v.Near)
	check(v.Distance > 0, "view.distance must be positive, got %g", v.Distance)

	s := c.Scene.Sphere
	check(s.Radius > 0, "scene.sphere.radius must be positive, got %g", s.Radius)
	check(s.LatBands >= 1, "scene.sphere.lat_bands must be >= 1, got %d", s.LatBands)
	check(s.LongBands >= 1, "scene.sphere.long_bands must be >= 1, got %d", s.LongBands)

	r := c.Scene.Rings
	check(r.LineWidth > 0, "scene.rings.line_width must be positive, got %g", r.LineWidth)
	for i, b := range r.Bands {
		check(b.Radius > 0, "scene.rings.bands[%d].radius must be positive, got %g", i, b.Radius)
		check(b.Thickness > 0, "scene.rings.bands[%d].thickness must be positive, got %g", i, b.Thickness)
		check(b.Segments >= 3, "scene.rings.bands[%d].segments must be >= 3, got %d", i, b.Segments)
		check(b.Orientation == geometry.Vertical || b.Orientation == geometry.Horizontal,
			"scene.rings.bands[%d].orientation is invalid", i)
	}

	st := c.Scene.Stars
	check(st.Count >= 0, "scene.stars.count must not be negative, got %d", st.Count)
	check(st.Distance > 0, "scene.stars.distance must be positive, got %g", st.Distance)
	check(st.Size > 0, "scene.stars.size must be positive, got %g", st.Size)

	cam := c.Camera
	check(cam.Deceleration > 0 && cam.Deceleration < 1, "camera.deceleration must be in (0, 1), got %g", cam.Deceleration)
	check(cam.DragDivisor > 0, "camera.drag_divisor must be positive, got %g", cam.DragDivisor)

	check(c.Lighting.Ambient >= 0 && c.Lighting.Ambient <= 1, "lighting.ambient must be in [0, 1], got %g", c.Lighting.Ambient)

	sc := c.Screenshot
	check(sc.Format == "webp" || sc.Format == "png", "screenshot.format must be webp or png, got %q", sc.Format)
	check(sc.Scale > 0 && sc.Scale <= 1, "screenshot.scale must be in (0, 1], got %g", sc.Scale)

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}

	for _, col := range []struct {
		name string
		c    Color
	}{
		{"scene.sphere.color", s.Color},
		{"scene.rings.color", r.Color},
		{"scene.stars.color", st.Color},
	} {
		for _, ch := range col.c {
			if ch < 0 || ch > 1 {
				errs = append(errs, fmt.Errorf("%s channels must be in [0, 1], got %v", col.name, col.c))
				break
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
