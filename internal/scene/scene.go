// Package scene composes the black hole scene and submits it for drawing.
package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/blackhole/internal/config"
	"github.com/Faultbox/blackhole/internal/engine/camera"
	"github.com/Faultbox/blackhole/internal/engine/geometry"
	"github.com/Faultbox/blackhole/internal/engine/starfield"
	"github.com/Faultbox/blackhole/internal/logger"
)

// DrawCall is one declarative draw request. The renderer derives all of its
// per-draw state from these fields.
type DrawCall struct {
	Name      string
	Mesh      *geometry.Mesh
	Color     mgl32.Vec3
	Lit       bool
	LineWidth float32 // 0 leaves the line width untouched
	PointSize float32 // Used by point meshes only
	MVP       mgl32.Mat4
	Normal    mgl32.Mat3 // Eye-space normal matrix, used when Lit
}

// Submitter draws meshes. It is called in submission order, once per object per frame.
type Submitter interface {
	Submit(dc DrawCall)
}

// Ring is a generated accretion ring and the settings it was built from.
type Ring struct {
	Config config.RingConfig
	Mesh   *geometry.Mesh
}

// Scene owns the static geometry. Nothing in it changes after New.
type Scene struct {
	view config.ViewConfig

	sphere   *geometry.Mesh
	rings    []Ring
	stars    []starfield.Star
	starMesh *geometry.Mesh

	sphereColor mgl32.Vec3
	ringColor   mgl32.Vec3
	starColor   mgl32.Vec3
	lineWidth   float32
	starSize    float32
}

// New generates every mesh and the star field exactly once.
func New(view config.ViewConfig, cfg config.SceneConfig, rng *rand.Rand) (*Scene, error) {
	s := &Scene{
		view:        view,
		sphereColor: mgl32.Vec3(cfg.Sphere.Color),
		ringColor:   mgl32.Vec3(cfg.Rings.Color),
		starColor:   mgl32.Vec3(cfg.Stars.Color),
		lineWidth:   cfg.Rings.LineWidth,
		starSize:    cfg.Stars.Size,
	}

	var err error
	s.sphere, err = geometry.Sphere(cfg.Sphere.Radius, cfg.Sphere.LatBands, cfg.Sphere.LongBands)
	if err != nil {
		return nil, fmt.Errorf("building sphere: %w", err)
	}

	for i, rc := range cfg.Rings.Bands {
		mesh, err := geometry.Ring(rc.Radius, rc.Thickness, rc.Segments, rc.Orientation)
		if err != nil {
			return nil, fmt.Errorf("building ring %d: %w", i, err)
		}
		s.rings = append(s.rings, Ring{Config: rc, Mesh: mesh})
	}

	s.stars, err = starfield.Generate(cfg.Stars.Count, cfg.Stars.Distance, rng)
	if err != nil {
		return nil, fmt.Errorf("generating stars: %w", err)
	}
	s.starMesh = geometry.NewPoints(starfield.Positions(s.stars))

	logger.Debug("scene built",
		zap.Int("sphereVertices", s.sphere.VertexCount()),
		zap.Int("sphereTriangles", s.sphere.TriangleCount()),
		zap.Int("rings", len(s.rings)),
		zap.Int("stars", len(s.stars)),
	)
	return s, nil
}

// Sphere returns the event horizon mesh.
func (s *Scene) Sphere() *geometry.Mesh {
	return s.sphere
}

// Rings returns the accretion rings in submission order.
func (s *Scene) Rings() []Ring {
	return s.rings
}

// Stars returns the star field.
func (s *Scene) Stars() []starfield.Star {
	return s.stars
}

// Projection returns the perspective matrix for a viewport of the given size.
func (s *Scene) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(s.view.FOV), aspect, s.view.Near, s.view.Far)
}

// ViewMatrix pulls the camera back along -Z, then rotates the scene by rotX
// degrees about X followed by rotY degrees about Y.
func (s *Scene) ViewMatrix(rotX, rotY float64) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -s.view.Distance).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(rotX)))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(float32(rotY))))
}

// Render submits the frame: stars, then the sphere, then each ring.
func (s *Scene) Render(sub Submitter, cam *camera.Inertial, width, height int) {
	rotX, rotY := cam.Angles()
	view := s.ViewMatrix(rotX, rotY)
	mvp := s.Projection(width, height).Mul4(view)
	normal := view.Mat3().Inv().Transpose()

	sub.Submit(DrawCall{
		Name:      "stars",
		Mesh:      s.starMesh,
		Color:     s.starColor,
		PointSize: s.starSize,
		MVP:       mvp,
	})

	sub.Submit(DrawCall{
		Name:   "sphere",
		Mesh:   s.sphere,
		Color:  s.sphereColor,
		Lit:    true,
		MVP:    mvp,
		Normal: normal,
	})

	for i, r := range s.rings {
		sub.Submit(DrawCall{
			Name:      fmt.Sprintf("ring%d", i),
			Mesh:      r.Mesh,
			Color:     s.ringColor,
			LineWidth: s.lineWidth,
			MVP:       mvp,
		})
	}
}
