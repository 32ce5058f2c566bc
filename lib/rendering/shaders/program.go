package shaders

// Shader is a compiled (or failed) shader stage. It is owned by the builder
// and released by Link.
type Shader struct {
	driver   Driver
	id       uint32
	kind     Kind
	name     string
	valid    bool
	log      string
	released bool
}

func (s *Shader) ID() uint32 {
	return s.id
}

func (s *Shader) Kind() Kind {
	return s.kind
}

func (s *Shader) Valid() bool {
	return s != nil && s.valid && !s.released
}

// Log is the compile log, empty on success.
func (s *Shader) Log() string {
	return s.log
}

func (s *Shader) release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.id != 0 {
		s.driver.DeleteShader(s.id)
	}
}

// Program is a linked shader program. The caller owns it and must call
// Release once the last draw call using it has been issued.
type Program struct {
	driver   Driver
	id       uint32
	valid    bool
	log      string
	released bool
}

func (p *Program) ID() uint32 {
	return p.id
}

// Valid reports whether both stages compiled and the link succeeded.
func (p *Program) Valid() bool {
	return p != nil && p.valid && !p.released
}

func (p *Program) Log() string {
	return p.log
}

// Use binds the program for drawing. Invalid programs are never bound.
func (p *Program) Use() error {
	if p == nil || !p.valid {
		return ErrInvalidProgram
	}
	if p.released {
		return ErrProgramReleased
	}
	p.driver.UseProgram(p.id)
	return nil
}

// Release frees the driver handle. It is safe to call on a nil program and
// any call after the first does nothing.
func (p *Program) Release() {
	if p == nil || p.released {
		return
	}
	p.released = true
	if p.id != 0 {
		p.driver.DeleteProgram(p.id)
	}
}
