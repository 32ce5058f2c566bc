package shaders

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/naga/glsl"
)

const testWGSL = `
@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.5, 0.2, 1.0);
}
`

func TestGLSLVersion(t *testing.T) {
	tests := []struct {
		major, minor int
		want         glsl.Version
	}{
		{3, 3, glsl.Version330},
		{4, 1, glsl.Version410},
		{4, 5, glsl.Version450},
	}
	for _, tt := range tests {
		if got := GLSLVersion(tt.major, tt.minor); got != tt.want {
			t.Errorf("GLSLVersion(%d, %d) = %v, want %v", tt.major, tt.minor, got, tt.want)
		}
	}
}

func TestTranslateWGSL(t *testing.T) {
	for _, kind := range []Kind{Vertex, Fragment} {
		t.Run(kind.String(), func(t *testing.T) {
			src, err := TranslateWGSL(Inline(kind, "test.wgsl", testWGSL), glsl.Version410)
			if err != nil {
				t.Fatalf("TranslateWGSL() error = %v", err)
			}
			if src.Kind != kind || src.Name != "test.wgsl" {
				t.Errorf("got %v %q", src.Kind, src.Name)
			}
			if !strings.Contains(src.Text, "#version 410 core") {
				t.Errorf("missing version directive:\n%s", src.Text)
			}
			if !strings.Contains(src.Text, "void main()") {
				t.Errorf("missing main:\n%s", src.Text)
			}
		})
	}
}

func TestTranslateWGSLErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   Kind
	}{
		{"syntax", "@vertex fn vs_main( -> {", Vertex},
		{"no fragment stage", "@vertex\nfn vs_main() -> @builtin(position) vec4<f32> {\n    return vec4<f32>(0.0);\n}\n", Fragment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TranslateWGSL(Inline(tt.kind, "bad.wgsl", tt.source), glsl.Version410)
			var compileErr *ShaderCompileError
			if !errors.As(err, &compileErr) {
				t.Fatalf("TranslateWGSL() error = %v, want *ShaderCompileError", err)
			}
			if compileErr.Kind != tt.kind || compileErr.Log == "" {
				t.Errorf("got %+v", compileErr)
			}
		})
	}
}
