// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/blackhole/internal/engine/geometry"
	"github.com/Faultbox/blackhole/internal/engine/renderer/shaders"
	"github.com/Faultbox/blackhole/internal/engine/shader"
	"github.com/Faultbox/blackhole/internal/logger"
	"github.com/Faultbox/blackhole/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec3
	LightDir   mgl32.Vec3 // Eye-space direction towards the light
	Ambient    float32
}

// gpuMesh is the uploaded form of a geometry.Mesh.
type gpuMesh struct {
	vao, vbo, nbo, ebo uint32
	count              int32
	mode               uint32
	indexed            bool
}

// Renderer draws scene.DrawCalls with a single flat/lit program.
type Renderer struct {
	config Config

	program    uint32
	uMVP       int32
	uNormal    int32
	uColor     int32
	uLit       int32
	uPointSize int32
	uLightDir  int32
	uAmbient   int32

	lineWidthRange [2]float32
	meshes         map[*geometry.Mesh]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*geometry.Mesh]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &r.lineWidthRange[0])

	var err error
	r.program, err = shader.CompileProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.uMVP = shader.MustGetUniform(r.program, "uMVP")
	r.uColor = shader.MustGetUniform(r.program, "uColor")
	r.uNormal = shader.GetUniform(r.program, "uNormalMatrix")
	r.uLit = shader.GetUniform(r.program, "uLit")
	r.uPointSize = shader.GetUniform(r.program, "uPointSize")
	r.uLightDir = shader.GetUniform(r.program, "uLightDir")
	r.uAmbient = shader.GetUniform(r.program, "uAmbient")

	logger.Debug("shader program created",
		zap.Uint32("program", r.program),
		zap.Float32s("lineWidthRange", r.lineWidthRange[:]),
	)
	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for _, m := range r.meshes {
		m.release()
	}
	r.meshes = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.Uniform3fv(r.uLightDir, 1, &r.config.LightDir[0])
	gl.Uniform1f(r.uAmbient, r.config.Ambient)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Submit draws one mesh. Meshes are uploaded the first time they are seen
// and reused afterwards; they must not be mutated after submission.
func (r *Renderer) Submit(dc scene.DrawCall) {
	m, ok := r.meshes[dc.Mesh]
	if !ok {
		m = upload(dc.Mesh)
		r.meshes[dc.Mesh] = m
		logger.Debug("mesh uploaded",
			zap.String("name", dc.Name),
			zap.Stringer("primitive", dc.Mesh.Primitive),
			zap.Int("vertices", dc.Mesh.VertexCount()),
			zap.Int32("elements", m.count),
		)
	}
	if m.count == 0 {
		return
	}

	gl.UniformMatrix4fv(r.uMVP, 1, false, &dc.MVP[0])
	gl.UniformMatrix3fv(r.uNormal, 1, false, &dc.Normal[0])
	gl.Uniform3fv(r.uColor, 1, &dc.Color[0])
	gl.Uniform1i(r.uLit, boolToInt(dc.Lit && dc.Mesh.HasNormals()))
	gl.Uniform1f(r.uPointSize, max(dc.PointSize, 1))
	if dc.LineWidth > 0 {
		gl.LineWidth(clampLineWidth(dc.LineWidth, r.lineWidthRange))
	}

	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
}

// ReadPixels reads the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func upload(mesh *geometry.Mesh) *gpuMesh {
	m := &gpuMesh{mode: gl.TRIANGLES}
	if mesh.Primitive == geometry.Points {
		m.mode = gl.POINTS
	}
	if len(mesh.Vertices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	positions := mesh.Flatten()
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	if normals := mesh.FlattenNormals(); normals != nil {
		gl.GenBuffers(1, &m.nbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.nbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, gl.Ptr(normals), gl.STATIC_DRAW)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
		gl.EnableVertexAttribArray(1)
	}

	if len(mesh.Indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)
		m.indexed = true
		m.count = int32(len(mesh.Indices))
	} else {
		m.count = int32(len(mesh.Vertices))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *gpuMesh) release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, buf := range []*uint32{&m.vbo, &m.nbo, &m.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
		}
	}
}

// clampLineWidth keeps w inside the driver's supported range.
// Core profiles on some platforms only accept 1.0.
func clampLineWidth(w float32, limits [2]float32) float32 {
	if limits[1] <= 0 {
		return 1
	}
	return min(max(w, limits[0]), limits[1])
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
