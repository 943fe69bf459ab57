// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms positions and, for lit meshes, normals into eye space.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies a flat color with optional single-light diffuse shading.
//
//go:embed scene.frag
var SceneFragmentShader string
