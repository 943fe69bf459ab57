package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     mgl32.Vec3
	}{
		{"straight ahead", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"from the right", 90, 0, mgl32.Vec3{1, 0, 0}},
		{"overhead", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"behind", 180, 0, mgl32.Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			if !vecNear(got, tt.want, 1e-6) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSunDirectionUnitLength(t *testing.T) {
	for lon := -180.0; lon <= 360; lon += 37 {
		for lat := -90.0; lat <= 90; lat += 13 {
			d := SunDirection(lon, lat)
			if l := d.Len(); l < 1-1e-6 || l > 1+1e-6 {
				t.Fatalf("SunDirection(%v, %v) has length %v", lon, lat, l)
			}
		}
	}
}

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}
