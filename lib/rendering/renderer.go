package rendering

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is what the renderer needs from a shader program.
type Program interface {
	Valid() bool
	Use() error
}

type Drawable interface {
	Draw()
}

type Renderer struct {
	Program    Program
	Mesh       Drawable
	Background mgl32.Vec4
}

func NewRenderer(program Program, mesh Drawable, background mgl32.Vec4) *Renderer {
	return &Renderer{
		Program:    program,
		Mesh:       mesh,
		Background: background,
	}
}

// Start sets the state that stays constant for the lifetime of the renderer.
func (r *Renderer) Start(width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r.Background[0], r.Background[1], r.Background[2], r.Background[3])
}

// DrawFrame clears the window and draws the mesh if enabled and the program
// can be used. It reports whether anything was drawn.
func (r *Renderer) DrawFrame(enabled bool) bool {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return r.draw(enabled)
}

func (r *Renderer) draw(enabled bool) bool {
	if !enabled || r.Program == nil || !r.Program.Valid() || r.Mesh == nil {
		return false
	}
	if err := r.Program.Use(); err != nil {
		return false
	}
	r.Mesh.Draw()
	return true
}
