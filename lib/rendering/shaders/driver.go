package shaders

// Driver is the slice of the graphics API the builder needs. All calls must
// be made from the thread that owns the GL context.
type Driver interface {
	CreateShader(kind Kind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most bufSize-1 bytes of the compile log.
	ShaderInfoLog(shader uint32, bufSize int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most bufSize-1 bytes of the link log.
	ProgramInfoLog(program uint32, bufSize int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
}
