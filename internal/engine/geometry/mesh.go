// Package geometry generates the procedural meshes drawn by the scene.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidParams is returned when generator parameters would produce degenerate geometry.
var ErrInvalidParams = errors.New("invalid geometry parameters")

// Primitive selects how a mesh's vertices are assembled.
type Primitive int

const (
	Triangles Primitive = iota
	Points
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Points:
		return "points"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

// Mesh holds static vertex data ready for upload.
// Normals is either empty or parallel to Vertices.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
	Primitive Primitive
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	if m.Primitive != Triangles {
		return 0
	}
	return len(m.Indices) / 3
}

// HasNormals reports whether the mesh carries per-vertex normals.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

// Validate checks the buffer invariants.
func (m *Mesh) Validate() error {
	if m.HasNormals() && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("normal count %d does not match vertex count %d", len(m.Normals), len(m.Vertices))
	}
	if m.Primitive == Triangles && len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (vertex count %d)", idx, i, n)
		}
	}
	return nil
}

// Flatten returns positions as a tightly packed xyz slice.
func (m *Mesh) Flatten() []float32 {
	return flatten(m.Vertices)
}

// FlattenNormals returns normals as a tightly packed xyz slice, or nil.
func (m *Mesh) FlattenNormals() []float32 {
	if !m.HasNormals() {
		return nil
	}
	return flatten(m.Normals)
}

func flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// NewPoints wraps a set of positions as an unindexed point mesh.
func NewPoints(positions []mgl32.Vec3) *Mesh {
	vs := make([]mgl32.Vec3, len(positions))
	copy(vs, positions)
	return &Mesh{
		Vertices:  vs,
		Primitive: Points,
	}
}
