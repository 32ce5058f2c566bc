package shaders

import (
	"fmt"
	"strings"
)

// fakeDriver is a tiny stand-in for a GL implementation. Its "compiler"
// accepts a source when it starts with a #version directive, has balanced
// brackets and defines main. Every call on a deleted handle is recorded as a
// violation.
type fakeDriver struct {
	next uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	// longLogs makes every failure produce a log far bigger than any buffer.
	longLogs bool
	// overrunLogs ignores bufSize, like a driver that does not truncate.
	overrunLogs bool
	// tolerantLink links programs even if a shader did not compile.
	tolerantLink bool
	// noShaders makes CreateShader fail.
	noShaders bool

	used       []uint32
	violations []string
}

type fakeShader struct {
	kind     Kind
	source   string
	compiled bool
	log      string
	deleted  int
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
	deleted  int
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (d *fakeDriver) violation(format string, args ...any) {
	d.violations = append(d.violations, fmt.Sprintf(format, args...))
}

func (d *fakeDriver) shader(id uint32, op string) *fakeShader {
	s, ok := d.shaders[id]
	if !ok {
		d.violation("%s on unknown shader %d", op, id)
		return &fakeShader{}
	}
	if s.deleted > 0 {
		d.violation("%s on deleted shader %d", op, id)
	}
	return s
}

func (d *fakeDriver) program(id uint32, op string) *fakeProgram {
	p, ok := d.programs[id]
	if !ok {
		d.violation("%s on unknown program %d", op, id)
		return &fakeProgram{}
	}
	if p.deleted > 0 {
		d.violation("%s on deleted program %d", op, id)
	}
	return p
}

func (d *fakeDriver) CreateShader(kind Kind) uint32 {
	if d.noShaders {
		return 0
	}
	d.next++
	d.shaders[d.next] = &fakeShader{kind: kind}
	return d.next
}

func (d *fakeDriver) ShaderSource(id uint32, source string) {
	d.shader(id, "ShaderSource").source = source
}

func (d *fakeDriver) CompileShader(id uint32) {
	s := d.shader(id, "CompileShader")
	s.log = check(s.source)
	if s.log != "" && d.longLogs {
		s.log = strings.Repeat(s.log+"\n", 200)
	}
	s.compiled = s.log == ""
}

func (d *fakeDriver) ShaderCompiled(id uint32) bool {
	return d.shader(id, "ShaderCompiled").compiled
}

func (d *fakeDriver) ShaderInfoLog(id uint32, bufSize int) string {
	return d.truncate(d.shader(id, "ShaderInfoLog").log, bufSize)
}

func (d *fakeDriver) DeleteShader(id uint32) {
	s, ok := d.shaders[id]
	if !ok {
		d.violation("DeleteShader on unknown shader %d", id)
		return
	}
	s.deleted++
	if s.deleted > 1 {
		d.violation("shader %d deleted %d times", id, s.deleted)
	}
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.next++
	d.programs[d.next] = &fakeProgram{}
	return d.next
}

func (d *fakeDriver) AttachShader(program uint32, shader uint32) {
	d.shader(shader, "AttachShader")
	p := d.program(program, "AttachShader")
	p.attached = append(p.attached, shader)
}

func (d *fakeDriver) LinkProgram(id uint32) {
	p := d.program(id, "LinkProgram")
	kinds := make(map[Kind]bool)
	for _, sid := range p.attached {
		s := d.shaders[sid]
		if !s.compiled && !d.tolerantLink {
			p.log = fmt.Sprintf("error: %s shader %d is not compiled", s.kind, sid)
			return
		}
		kinds[s.kind] = true
	}
	if !kinds[Vertex] || !kinds[Fragment] {
		p.log = "error: program needs a vertex and a fragment shader"
		return
	}
	p.linked = true
}

func (d *fakeDriver) ProgramLinked(id uint32) bool {
	return d.program(id, "ProgramLinked").linked
}

func (d *fakeDriver) ProgramInfoLog(id uint32, bufSize int) string {
	return d.truncate(d.program(id, "ProgramInfoLog").log, bufSize)
}

func (d *fakeDriver) UseProgram(id uint32) {
	d.program(id, "UseProgram")
	d.used = append(d.used, id)
}

func (d *fakeDriver) DeleteProgram(id uint32) {
	p, ok := d.programs[id]
	if !ok {
		d.violation("DeleteProgram on unknown program %d", id)
		return
	}
	p.deleted++
	if p.deleted > 1 {
		d.violation("program %d deleted %d times", id, p.deleted)
	}
}

func (d *fakeDriver) truncate(log string, bufSize int) string {
	if d.overrunLogs || len(log) < bufSize {
		return log
	}
	return log[:bufSize-1]
}

// check is the fake compiler. It returns an empty log on success.
func check(source string) string {
	if !strings.HasPrefix(strings.TrimSpace(source), "#version") {
		return "0:1(1): error: #version directive is required for core profile shaders"
	}
	depth := 0
	for i, c := range source {
		switch c {
		case '(', '{':
			depth++
		case ')', '}':
			depth--
		}
		if depth < 0 {
			return fmt.Sprintf("0:1(%d): error: syntax error, unexpected '%c'", i+1, c)
		}
	}
	if depth != 0 {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	if !strings.Contains(source, "void main(") {
		return "0:1(1): error: function `main' is not defined"
	}
	return ""
}
