// Package lighting describes the single directional light used for lit meshes.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts angles in degrees to a unit vector pointing towards the light.
// Longitude rotates around Y starting from +Z; latitude is the elevation above the XZ plane.
func SunDirection(longitude, latitude float64) mgl32.Vec3 {
	lon := longitude * gomath.Pi / 180
	lat := latitude * gomath.Pi / 180

	return mgl32.Vec3{
		float32(gomath.Cos(lat) * gomath.Sin(lon)),
		float32(gomath.Sin(lat)),
		float32(gomath.Cos(lat) * gomath.Cos(lon)),
	}
}
