package shaders

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fosdem/highlands/lib/metrics"
)

// DefaultInfoLogSize bounds compile and link logs, terminator included.
const DefaultInfoLogSize = 512

// Builder compiles shader stages and links them into programs.
type Builder struct {
	driver  Driver
	logSize int
	logger  *slog.Logger
}

func NewBuilder(driver Driver, logSize int) *Builder {
	if logSize <= 0 {
		logSize = DefaultInfoLogSize
	}
	return &Builder{
		driver:  driver,
		logSize: logSize,
		logger:  slog.With("module", "shaders"),
	}
}

// Compile submits src to the driver. The returned shader is never nil; on
// failure it is marked invalid and the error is a *ShaderCompileError.
func (b *Builder) Compile(src Source) (*Shader, error) {
	s := &Shader{
		driver: b.driver,
		kind:   src.Kind,
		name:   src.Name,
	}
	s.id = b.driver.CreateShader(src.Kind)
	if s.id == 0 {
		s.log = "driver could not allocate a shader object"
		return s, b.compileFailed(s)
	}

	b.driver.ShaderSource(s.id, src.Text)
	b.driver.CompileShader(s.id)

	if !b.driver.ShaderCompiled(s.id) {
		s.log = b.bound(b.driver.ShaderInfoLog(s.id, b.logSize))
		return s, b.compileFailed(s)
	}

	s.valid = true
	metrics.ShaderCompiles.WithLabelValues(src.Kind.String(), "ok").Inc()
	b.logger.Debug(fmt.Sprintf("compiled %s shader %s", src.Kind, src.Name))
	return s, nil
}

func (b *Builder) compileFailed(s *Shader) error {
	metrics.ShaderCompiles.WithLabelValues(s.kind.String(), "failed").Inc()
	err := &ShaderCompileError{Kind: s.kind, Name: s.name, Log: s.log}
	b.logger.Error(err.Error())
	return err
}

// Link attaches both shaders to a new program and links it. Both shaders
// are released afterwards, whatever the outcome. The returned program is nil
// only if a shader had already been released; otherwise the caller owns it,
// valid or not.
func (b *Builder) Link(vertex *Shader, fragment *Shader) (*Program, error) {
	defer vertex.release()
	defer fragment.release()

	if vertex == nil || fragment == nil || vertex.released || fragment.released {
		return nil, ErrShaderReleased
	}

	p := &Program{driver: b.driver}
	p.id = b.driver.CreateProgram()
	if p.id == 0 {
		p.log = "driver could not allocate a program object"
		return p, b.linkFailed(p)
	}

	b.driver.AttachShader(p.id, vertex.id)
	b.driver.AttachShader(p.id, fragment.id)
	b.driver.LinkProgram(p.id)

	if !b.driver.ProgramLinked(p.id) {
		p.log = b.bound(b.driver.ProgramInfoLog(p.id, b.logSize))
		return p, b.linkFailed(p)
	}

	var broken []string
	for _, s := range []*Shader{vertex, fragment} {
		if !s.valid {
			broken = append(broken, s.kind.String())
		}
	}
	if len(broken) > 0 {
		p.log = fmt.Sprintf("linked with uncompiled %s shader", strings.Join(broken, " and "))
		return p, b.linkFailed(p)
	}

	p.valid = true
	metrics.ProgramLinks.WithLabelValues("ok").Inc()
	return p, nil
}

func (b *Builder) linkFailed(p *Program) error {
	metrics.ProgramLinks.WithLabelValues("failed").Inc()
	err := &ProgramLinkError{Log: p.log}
	b.logger.Error(err.Error())
	return err
}

// Build compiles both sources and links them. If either stage fails to
// compile, nothing is linked: both shaders are released and the compile
// errors are returned.
func (b *Builder) Build(vertex Source, fragment Source) (*Program, error) {
	vs, vErr := b.Compile(vertex)
	fs, fErr := b.Compile(fragment)
	if err := errors.Join(vErr, fErr); err != nil {
		vs.release()
		fs.release()
		return nil, err
	}
	return b.Link(vs, fs)
}

// bound trims a driver log to the configured buffer size, leaving room for
// the terminator the driver would have written.
func (b *Builder) bound(log string) string {
	log = strings.TrimRight(log, "\x00")
	limit := b.logSize - 1
	if len(log) <= limit {
		return log
	}
	for limit > 0 && !utf8.RuneStart(log[limit]) {
		limit--
	}
	return log[:limit]
}
