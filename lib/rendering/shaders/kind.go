package shaders

import (
	"path/filepath"
	"strings"
)

// Kind is the pipeline stage a shader source is compiled for.
type Kind int

const (
	Vertex Kind = iota
	Fragment
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ParseKind accepts the names returned by Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "vertex", "vert":
		return Vertex, true
	case "fragment", "frag":
		return Fragment, true
	}
	return 0, false
}

// KindFromPath guesses the kind from the file extension. WGSL files carry
// both stages and cannot be classified this way.
func KindFromPath(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".vs":
		return Vertex, true
	case ".frag", ".fs":
		return Fragment, true
	}
	return 0, false
}
