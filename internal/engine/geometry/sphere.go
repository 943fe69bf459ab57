package geometry

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere builds a UV-sphere on a (latBands+1) x (longBands+1) grid.
// Rows run from the +Y pole (theta = 0) to the -Y pole; the row stride is longBands+1.
// Normals are the unit directions the positions were scaled from.
func Sphere(radius float32, latBands, longBands int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius must be positive, got %g", ErrInvalidParams, radius)
	}
	if latBands < 1 || longBands < 1 {
		return nil, fmt.Errorf("%w: sphere bands must be >= 1, got %dx%d", ErrInvalidParams, latBands, longBands)
	}

	stride := longBands + 1
	count := (latBands + 1) * stride
	mesh := &Mesh{
		Vertices:  make([]mgl32.Vec3, 0, count),
		Normals:   make([]mgl32.Vec3, 0, count),
		Indices:   make([]uint32, 0, 6*latBands*longBands),
		Primitive: Triangles,
	}

	for lat := 0; lat <= latBands; lat++ {
		theta := float64(lat) * gomath.Pi / float64(latBands)
		sinTheta, cosTheta := gomath.Sin(theta), gomath.Cos(theta)

		for long := 0; long <= longBands; long++ {
			phi := float64(long) * 2 * gomath.Pi / float64(longBands)
			sinPhi, cosPhi := gomath.Sin(phi), gomath.Cos(phi)

			n := mgl32.Vec3{
				float32(sinTheta * cosPhi),
				float32(cosTheta),
				float32(sinTheta * sinPhi),
			}
			mesh.Normals = append(mesh.Normals, n)
			mesh.Vertices = append(mesh.Vertices, n.Mul(radius))
		}
	}

	for lat := 0; lat < latBands; lat++ {
		for long := 0; long < longBands; long++ {
			first := uint32(lat*stride + long)
			second := first + uint32(stride)

			mesh.Indices = append(mesh.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return mesh, nil
}
