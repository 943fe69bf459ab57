// Package starfield scatters background stars on a sphere shell.
package starfield

import (
	"fmt"
	gomath "math"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Star is a single background point.
type Star struct {
	Position mgl32.Vec3
}

// NewSource returns the random source used for star placement.
// A zero seed draws from the clock, so every run gets a different sky.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate places count stars at the given distance from the origin.
// Angles are drawn uniformly (theta in [0, 2pi), phi in [0, pi)), which clusters
// stars toward the poles; the field is decorative so that is acceptable.
func Generate(count int, distance float32, rng *rand.Rand) ([]Star, error) {
	if count < 0 {
		return nil, fmt.Errorf("star count must not be negative, got %d", count)
	}
	if distance <= 0 {
		return nil, fmt.Errorf("star distance must be positive, got %g", distance)
	}
	if rng == nil {
		rng = NewSource(0)
	}

	stars := make([]Star, count)
	d := float64(distance)
	for i := range stars {
		theta := rng.Float64() * 2 * gomath.Pi
		phi := rng.Float64() * gomath.Pi

		sinPhi := gomath.Sin(phi)
		stars[i].Position = mgl32.Vec3{
			float32(d * sinPhi * gomath.Cos(theta)),
			float32(d * sinPhi * gomath.Sin(theta)),
			float32(d * gomath.Cos(phi)),
		}
	}
	return stars, nil
}

// Positions extracts star positions for upload as a point mesh.
func Positions(stars []Star) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(stars))
	for i, s := range stars {
		out[i] = s.Position
	}
	return out
}
