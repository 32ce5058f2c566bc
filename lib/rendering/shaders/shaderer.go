package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/naga/glsl"
)

//go:embed *.frag *.vert
var templateDir embed.FS

var templateNames = map[Kind]string{
	Vertex:   "triangle.vert",
	Fragment: "triangle.frag",
}

type Shaderer struct {
	templates *template.Template
	data      *ShaderData
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	Version    glsl.Version
	FillColour mgl32.Vec4
}

func NewShaderer(data *ShaderData) (*Shaderer, error) {
	s := &Shaderer{data: data}

	var err error
	s.templates, err = template.New("shaders").
		Funcs(template.FuncMap{"float": glslFloat}).
		ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

func (s *Shaderer) GetShaderSource(name string) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, s.data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

// Source returns the built-in shader for kind when path is empty, and the
// contents of path otherwise. WGSL files are translated to GLSL for the
// configured version.
func (s *Shaderer) Source(kind Kind, path string) (Source, error) {
	if path == "" {
		text, err := s.GetShaderSource(templateNames[kind])
		if err != nil {
			return Source{}, err
		}
		return Inline(kind, templateNames[kind], text), nil
	}

	src, err := LoadSource(path, kind)
	if err != nil {
		return Source{}, err
	}
	if strings.EqualFold(filepath.Ext(path), ".wgsl") {
		return TranslateWGSL(src, s.data.Version)
	}
	return src, nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// glslFloat prints a float the way GLSL wants a float literal.
func glslFloat(f float32) string {
	return fmt.Sprintf("%.4f", f)
}
