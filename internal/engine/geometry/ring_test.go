package geometry

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRingCounts(t *testing.T) {
	for _, segments := range []int{3, 4, 17, 100} {
		for _, o := range []Orientation{Vertical, Horizontal} {
			m, err := Ring(2.2, 0.2, segments, o)
			if err != nil {
				t.Fatalf("Ring(%d, %s): %v", segments, o, err)
			}
			if m.VertexCount() != 2*(segments+1) {
				t.Errorf("Ring(%d, %s): got %d vertices, want %d", segments, o, m.VertexCount(), 2*(segments+1))
			}
			if len(m.Indices) != 6*segments {
				t.Errorf("Ring(%d, %s): got %d indices, want %d", segments, o, len(m.Indices), 6*segments)
			}
			if m.HasNormals() {
				t.Errorf("Ring(%d, %s): rings should not carry normals", segments, o)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Ring(%d, %s): Validate: %v", segments, o, err)
			}
		}
	}
}

func TestRingClosure(t *testing.T) {
	const segments = 100
	for _, o := range []Orientation{Vertical, Horizontal} {
		first := RingCenterline(3, 0, segments, o)
		last := RingCenterline(3, segments, segments, o)
		if !vecNear(first, last, 1e-5) {
			t.Errorf("%s: seam samples differ: %v vs %v", o, first, last)
		}

		m, err := Ring(3, 0.2, segments, o)
		if err != nil {
			t.Fatalf("Ring: %v", err)
		}
		n := len(m.Vertices)
		if !vecNear(m.Vertices[0], m.Vertices[n-2], 1e-5) ||
			!vecNear(m.Vertices[1], m.Vertices[n-1], 1e-5) {
			t.Errorf("%s: seam vertex pair does not coincide", o)
		}
	}
}

func TestRingLastQuadWraps(t *testing.T) {
	const segments = 5
	m, err := Ring(1, 0.5, segments, Vertical)
	if err != nil {
		t.Fatalf("Ring: %v", err)
	}

	got := m.Indices[len(m.Indices)-6:]
	// i = 4, next = 0
	want := []uint32{8, 0, 1, 8, 1, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("last quad: got %v, want %v", got, want)
		}
	}
}

func TestRingThicknessAxis(t *testing.T) {
	tests := []struct {
		name   string
		o      Orientation
		axis   int
		planar int
	}{
		{"vertical", Vertical, 1, 2},
		{"horizontal", Horizontal, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Ring(1.5, 0.5, 8, tt.o)
			if err != nil {
				t.Fatalf("Ring: %v", err)
			}
			for i := 0; i < len(m.Vertices); i += 2 {
				lo, hi := m.Vertices[i], m.Vertices[i+1]
				if abs(lo[tt.axis]+0.25) > 1e-6 || abs(hi[tt.axis]-0.25) > 1e-6 {
					t.Fatalf("sample %d: thickness offsets %f/%f, want -0.25/0.25", i/2, lo[tt.axis], hi[tt.axis])
				}
				if lo[0] != hi[0] || lo[tt.planar] != hi[tt.planar] {
					t.Fatalf("sample %d: pair differs outside the thickness axis", i/2)
				}
				r := mgl32.Vec2{lo[0], lo[tt.planar]}.Len()
				if abs(r-1.5) > 1e-5 {
					t.Fatalf("sample %d: centerline radius %f, want 1.5", i/2, r)
				}
			}
		})
	}
}

func TestRingInvalid(t *testing.T) {
	tests := []struct {
		name      string
		radius    float32
		thickness float32
		segments  int
		o         Orientation
	}{
		{"zero radius", 0, 0.2, 10, Vertical},
		{"zero thickness", 1, 0, 10, Vertical},
		{"two segments", 1, 0.2, 2, Horizontal},
		{"bad orientation", 1, 0.2, 10, Orientation(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ring(tt.radius, tt.thickness, tt.segments, tt.o)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestOrientationText(t *testing.T) {
	for _, o := range []Orientation{Vertical, Horizontal} {
		text, err := o.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", o, err)
		}
		var back Orientation
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != o {
			t.Errorf("got %s, want %s", back, o)
		}
	}

	var o Orientation
	if err := o.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("expected error for unknown orientation")
	}
}

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
