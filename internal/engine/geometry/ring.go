package geometry

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orientation selects the plane a ring lies in.
type Orientation int

const (
	// Vertical rings lie in the XZ plane and are thickened along Y.
	Vertical Orientation = iota
	// Horizontal rings lie in the XY plane and are thickened along Z.
	Horizontal
)

// String returns the orientation name as used in config files.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts a config name to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: unknown ring orientation %q", ErrInvalidParams, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if o != Vertical && o != Horizontal {
		return nil, fmt.Errorf("%w: unknown ring orientation %d", ErrInvalidParams, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Ring builds a flat band of the given thickness around a circle of the given radius.
//
// The sweep takes segments+1 samples so sample 0 and sample segments share a position;
// the stitching wraps with (i+1) mod segments, so the last pair is never indexed.
// Each sample contributes two vertices: centerline minus then plus half the thickness.
func Ring(radius, thickness float32, segments int, o Orientation) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: ring radius must be positive, got %g", ErrInvalidParams, radius)
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("%w: ring thickness must be positive, got %g", ErrInvalidParams, thickness)
	}
	if segments < 3 {
		return nil, fmt.Errorf("%w: ring needs at least 3 segments, got %d", ErrInvalidParams, segments)
	}

	var axis mgl32.Vec3
	switch o {
	case Vertical:
		axis = mgl32.Vec3{0, 1, 0}
	case Horizontal:
		axis = mgl32.Vec3{0, 0, 1}
	default:
		return nil, fmt.Errorf("%w: unknown ring orientation %d", ErrInvalidParams, int(o))
	}
	offset := axis.Mul(thickness / 2)

	mesh := &Mesh{
		Vertices:  make([]mgl32.Vec3, 0, 2*(segments+1)),
		Indices:   make([]uint32, 0, 6*segments),
		Primitive: Triangles,
	}

	for i := 0; i <= segments; i++ {
		c := ringPoint(radius, i, segments, o)
		mesh.Vertices = append(mesh.Vertices, c.Sub(offset), c.Add(offset))
	}

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		a, b := uint32(2*i), uint32(2*i+1)
		c, d := uint32(2*next), uint32(2*next+1)

		mesh.Indices = append(mesh.Indices,
			a, c, d,
			a, d, b,
		)
	}

	return mesh, nil
}

// RingCenterline returns the centerline sample i of a ring with the given segment count.
func RingCenterline(radius float32, i, segments int, o Orientation) mgl32.Vec3 {
	return ringPoint(radius, i, segments, o)
}

func ringPoint(radius float32, i, segments int, o Orientation) mgl32.Vec3 {
	theta := float64(i) * 2 * gomath.Pi / float64(segments)
	x := radius * float32(gomath.Cos(theta))
	s := radius * float32(gomath.Sin(theta))
	if o == Horizontal {
		return mgl32.Vec3{x, s, 0}
	}
	return mgl32.Vec3{x, 0, s}
}
