package geometry

import (
	"errors"
	gomath "math"
	"testing"
)

func TestSphereCounts(t *testing.T) {
	tests := []struct {
		lat, long int
	}{
		{1, 1},
		{1, 3},
		{2, 2},
		{7, 5},
		{50, 50},
	}

	for _, tt := range tests {
		m, err := Sphere(1.5, tt.lat, tt.long)
		if err != nil {
			t.Fatalf("Sphere(%d, %d): %v", tt.lat, tt.long, err)
		}

		wantVerts := (tt.lat + 1) * (tt.long + 1)
		if m.VertexCount() != wantVerts {
			t.Errorf("Sphere(%d, %d): got %d vertices, want %d", tt.lat, tt.long, m.VertexCount(), wantVerts)
		}
		if len(m.Normals) != wantVerts {
			t.Errorf("Sphere(%d, %d): got %d normals, want %d", tt.lat, tt.long, len(m.Normals), wantVerts)
		}
		wantIdx := 6 * tt.lat * tt.long
		if len(m.Indices) != wantIdx {
			t.Errorf("Sphere(%d, %d): got %d indices, want %d", tt.lat, tt.long, len(m.Indices), wantIdx)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("Sphere(%d, %d): Validate: %v", tt.lat, tt.long, err)
		}
	}
}

func TestSphereNormals(t *testing.T) {
	const radius = 1.5
	m, err := Sphere(radius, 50, 50)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}

	for i, n := range m.Normals {
		if d := gomath.Abs(float64(n.Len()) - 1); d > 1e-6 {
			t.Fatalf("normal %d: |n| = %f, want 1", i, n.Len())
		}
		p := m.Vertices[i]
		scaled := n.Mul(radius)
		for k := 0; k < 3; k++ {
			if d := gomath.Abs(float64(p[k] - scaled[k])); d > 1e-6 {
				t.Fatalf("vertex %d component %d: got %f, want %f", i, k, p[k], scaled[k])
			}
		}
	}
}

func TestSpherePoles(t *testing.T) {
	m, err := Sphere(2, 4, 8)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}

	top := m.Vertices[0]
	if abs(top[1]-2) > 1e-6 {
		t.Errorf("first row should sit at +Y pole, got %v", top)
	}
	bottom := m.Vertices[len(m.Vertices)-1]
	if abs(bottom[1]+2) > 1e-6 {
		t.Errorf("last row should sit at -Y pole, got %v", bottom)
	}
}

func TestSphereWinding(t *testing.T) {
	m, err := Sphere(1, 3, 4)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}

	// Cell (lat=1, long=2): first = 1*5+2 = 7, second = 12.
	cell := (1*4 + 2) * 6
	got := m.Indices[cell : cell+6]
	want := []uint32{7, 12, 8, 12, 13, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell indices: got %v, want %v", got, want)
		}
	}
}

func TestSphereDeterministic(t *testing.T) {
	a, err := Sphere(1.5, 20, 30)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}
	b, err := Sphere(1.5, 20, 30)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}

	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] || a.Normals[i] != b.Normals[i] {
			t.Fatalf("vertex %d differs between identical calls", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs between identical calls", i)
		}
	}
}

func TestSphereInvalid(t *testing.T) {
	tests := []struct {
		name      string
		radius    float32
		lat, long int
	}{
		{"zero radius", 0, 10, 10},
		{"negative radius", -1, 10, 10},
		{"zero lat bands", 1, 0, 10},
		{"zero long bands", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sphere(tt.radius, tt.lat, tt.long)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
