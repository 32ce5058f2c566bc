package rendering

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// Mesh owns a vertex array and the buffer behind it. Vertices are plain
// positions bound to attribute location 0.
type Mesh struct {
	VAO uint32
	VBO uint32

	count    int32
	released bool
}

func NewMesh(vertices []mgl32.Vec3) *Mesh {
	m := &Mesh{count: int32(len(vertices))}
	data := flatten(vertices)

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*f32, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

func (m *Mesh) Release() {
	if m == nil || m.released {
		return
	}
	m.released = true
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
}

func flatten(vertices []mgl32.Vec3) []float32 {
	data := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		data = append(data, v[0], v[1], v[2])
	}
	return data
}
