package shaders

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProgram  = errors.New("program did not build successfully")
	ErrProgramReleased = errors.New("program was already released")
	ErrShaderReleased  = errors.New("shader was already released")
)

// ShaderCompileError carries the driver's diagnostic log for one shader.
type ShaderCompileError struct {
	Kind Kind
	Name string
	Log  string
}

func (e *ShaderCompileError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("failed to compile %s shader %s: %s", e.Kind, e.Name, e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Kind, e.Log)
}

type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// SourceUnreadableError is returned when a shader file cannot be opened.
type SourceUnreadableError struct {
	Path string
	Err  error
}

func (e *SourceUnreadableError) Error() string {
	return fmt.Sprintf("could not read shader source %s: %s", e.Path, e.Err)
}

func (e *SourceUnreadableError) Unwrap() error {
	return e.Err
}
