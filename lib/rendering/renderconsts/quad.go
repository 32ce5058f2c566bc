package renderconsts

import (
	"github.com/go-gl/mathgl/mgl32"
)

// QuadVertices are the two triangles making up the centred quad.
var QuadVertices = []mgl32.Vec3{
	// First triangle
	{0.5, 0.5, 0.0},  // Top right
	{-0.5, 0.5, 0.0}, // Top left
	{0.5, -0.5, 0.0}, // Bottom right

	// Second triangle
	{-0.5, 0.5, 0.0},  // Top left
	{-0.5, -0.5, 0.0}, // Bottom left
	{0.5, -0.5, 0.0},  // Bottom right
}
