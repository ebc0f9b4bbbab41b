// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WaterVertexShader displaces the plane with big and small waves.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader colors the surface by elevation.
//
//go:embed water.frag
var WaterFragmentShader string
