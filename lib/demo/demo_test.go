package demo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fosdem/highlands/lib/config"
	"github.com/fosdem/highlands/lib/rendering/shaders"
)

// acceptingDriver compiles and links anything.
type acceptingDriver struct {
	next     uint32
	created  int
	deleted  int
	programs int
	sources  map[shaders.Kind]string
	kinds    map[uint32]shaders.Kind
}

func newAcceptingDriver() *acceptingDriver {
	return &acceptingDriver{
		sources: make(map[shaders.Kind]string),
		kinds:   make(map[uint32]shaders.Kind),
	}
}

func (d *acceptingDriver) CreateShader(kind shaders.Kind) uint32 {
	d.next++
	d.created++
	d.kinds[d.next] = kind
	return d.next
}

func (d *acceptingDriver) ShaderSource(shader uint32, source string) {
	d.sources[d.kinds[shader]] = source
}

func (d *acceptingDriver) CompileShader(uint32)              {}
func (d *acceptingDriver) ShaderCompiled(uint32) bool        { return true }
func (d *acceptingDriver) ShaderInfoLog(uint32, int) string  { return "" }
func (d *acceptingDriver) DeleteShader(uint32)               { d.deleted++ }
func (d *acceptingDriver) AttachShader(uint32, uint32)       {}
func (d *acceptingDriver) LinkProgram(uint32)                {}
func (d *acceptingDriver) ProgramLinked(uint32) bool         { return true }
func (d *acceptingDriver) ProgramInfoLog(uint32, int) string { return "" }
func (d *acceptingDriver) UseProgram(uint32)                 {}
func (d *acceptingDriver) DeleteProgram(uint32)              {}

func (d *acceptingDriver) CreateProgram() uint32 {
	d.next++
	d.programs++
	return d.next
}

func TestBuildProgramBuiltin(t *testing.T) {
	d := newAcceptingDriver()
	program, err := BuildProgram(shaders.NewBuilder(d, 0), config.Default())
	if err != nil {
		t.Fatalf("BuildProgram() error = %v", err)
	}
	defer program.Release()

	if !program.Valid() {
		t.Error("program is invalid")
	}
	if d.created != 2 || d.deleted != 2 {
		t.Errorf("created %d shaders, deleted %d; want 2 and 2", d.created, d.deleted)
	}
	if d.sources[shaders.Vertex] == "" || d.sources[shaders.Fragment] == "" {
		t.Error("built-in sources were not uploaded")
	}
}

func TestBuildProgramFromFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "shader.vert")
	if err := os.WriteFile(vert, []byte("#version 410 core\nvoid main(){}"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Shaders.Vertex = config.CfgPath(vert)

	d := newAcceptingDriver()
	program, err := BuildProgram(shaders.NewBuilder(d, 0), cfg)
	if err != nil {
		t.Fatalf("BuildProgram() error = %v", err)
	}
	defer program.Release()

	if got := d.sources[shaders.Vertex]; got != "#version 410 core\nvoid main(){}" {
		t.Errorf("vertex source = %q", got)
	}
}

func TestBuildProgramUnreadable(t *testing.T) {
	cfg := config.Default()
	cfg.Shaders.Fragment = config.CfgPath(filepath.Join(t.TempDir(), "missing.frag"))

	d := newAcceptingDriver()
	program, err := BuildProgram(shaders.NewBuilder(d, 0), cfg)

	var unreadable *shaders.SourceUnreadableError
	if !errors.As(err, &unreadable) {
		t.Fatalf("BuildProgram() error = %v, want *SourceUnreadableError", err)
	}
	if program != nil {
		t.Error("got a program from an unreadable source")
	}
	if d.created != 0 || d.programs != 0 {
		t.Errorf("driver was used: %d shaders, %d programs", d.created, d.programs)
	}
}
