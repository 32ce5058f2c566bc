package shaders

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/naga/glsl"
)

func newTestShaderer(t *testing.T) *Shaderer {
	t.Helper()
	s, err := NewShaderer(&ShaderData{
		Version:    GLSLVersion(4, 1),
		FillColour: mgl32.Vec4{1, 0.5, 0.2, 1},
	})
	if err != nil {
		t.Fatalf("NewShaderer() error = %v", err)
	}
	return s
}

func TestShadererBuiltins(t *testing.T) {
	s := newTestShaderer(t)

	names := s.TemplateNames()
	for _, want := range []string{"triangle.vert", "triangle.frag"} {
		if !slices.Contains(names, want) {
			t.Errorf("TemplateNames() = %v, missing %s", names, want)
		}
	}

	vs, err := s.Source(Vertex, "")
	if err != nil {
		t.Fatal(err)
	}
	fs, err := s.Source(Fragment, "")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(vs.Text, "#version 410 core\n") {
		t.Errorf("vertex source starts with %q", strings.SplitN(vs.Text, "\n", 2)[0])
	}
	if !strings.Contains(fs.Text, "vec4(1.0000, 0.5000, 0.2000, 1.0000)") {
		t.Errorf("fill colour missing from fragment source:\n%s", fs.Text)
	}

	d := newFakeDriver()
	p, err := NewBuilder(d, 0).Build(vs, fs)
	if err != nil {
		t.Fatalf("built-in shaders do not build: %v", err)
	}
	p.Release()
	assertClean(t, d)
}

func TestShadererFiles(t *testing.T) {
	s := newTestShaderer(t)
	dir := t.TempDir()

	glslPath := filepath.Join(dir, "shader.frag")
	if err := os.WriteFile(glslPath, []byte(validFragment), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := s.Source(Fragment, glslPath)
	if err != nil {
		t.Fatal(err)
	}
	if src.Text != validFragment {
		t.Errorf("Source() = %q, want file contents", src.Text)
	}

	_, err = s.Source(Vertex, filepath.Join(dir, "missing.vert"))
	var unreadable *SourceUnreadableError
	if !errors.As(err, &unreadable) {
		t.Errorf("Source() error = %v, want *SourceUnreadableError", err)
	}

	wgslPath := filepath.Join(dir, "shader.wgsl")
	if err := os.WriteFile(wgslPath, []byte(testWGSL), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err = s.Source(Vertex, wgslPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(src.Text, "#version "+glsl.Version410.String()) {
		t.Errorf("translated source does not start with the version directive:\n%s", src.Text)
	}
}
