package shaders

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDriver talks to the OpenGL context that is current on the calling thread.
type GLDriver struct{}

func (GLDriver) CreateShader(kind Kind) uint32 {
	return gl.CreateShader(glShaderType(kind))
}

func (GLDriver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
}

func (GLDriver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (GLDriver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GLDriver) ShaderInfoLog(shader uint32, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var length int32
	gl.GetShaderInfoLog(shader, int32(bufSize), &length, &buf[0])
	return string(buf[:length])
}

func (GLDriver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GLDriver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GLDriver) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GLDriver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GLDriver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GLDriver) ProgramInfoLog(program uint32, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]byte, bufSize)
	var length int32
	gl.GetProgramInfoLog(program, int32(bufSize), &length, &buf[0])
	return string(buf[:length])
}

func (GLDriver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GLDriver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func glShaderType(kind Kind) uint32 {
	if kind == Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}
