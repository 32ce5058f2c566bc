package shaders

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// GLSLVersion maps an OpenGL core context version to its shading language
// version, e.g. 4.1 to "410 core".
func GLSLVersion(major int, minor int) glsl.Version {
	return glsl.Version{Major: uint8(major), Minor: uint8(minor * 10)}
}

// TranslateWGSL turns a WGSL module into GLSL for the stage in src.Kind. The
// module must contain exactly one usable entry point for that stage; the
// first one found wins.
func TranslateWGSL(src Source, version glsl.Version) (Source, error) {
	fail := func(format string, args ...any) (Source, error) {
		return Source{}, &ShaderCompileError{
			Kind: src.Kind,
			Name: src.Name,
			Log:  fmt.Sprintf(format, args...),
		}
	}

	ast, err := naga.Parse(src.Text)
	if err != nil {
		return fail("%s", err)
	}
	module, err := naga.LowerWithSource(ast, src.Text)
	if err != nil {
		return fail("%s", err)
	}
	validationErrors, err := naga.Validate(module)
	if err != nil {
		return fail("%s", err)
	}
	if len(validationErrors) > 0 {
		return fail("%s", validationErrors[0].Error())
	}

	stage := ir.StageVertex
	if src.Kind == Fragment {
		stage = ir.StageFragment
	}
	entryPoint := ""
	for _, ep := range module.EntryPoints {
		if ep.Stage == stage {
			entryPoint = ep.Name
			break
		}
	}
	if entryPoint == "" {
		return fail("no %s entry point", src.Kind)
	}

	code, _, err := glsl.Compile(module, glsl.Options{
		LangVersion:        version,
		EntryPoint:         entryPoint,
		ForceHighPrecision: true,
	})
	if err != nil {
		return fail("%s", err)
	}

	return Source{Kind: src.Kind, Name: src.Name, Text: code}, nil
}
