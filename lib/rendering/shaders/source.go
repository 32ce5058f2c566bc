package shaders

import (
	"os"
	"path/filepath"
)

// Source is the text of a single shader stage.
type Source struct {
	Kind Kind
	Name string
	Text string
}

func Inline(kind Kind, name string, text string) Source {
	return Source{Kind: kind, Name: name, Text: text}
}

// LoadSource reads a shader from disk. The only error it returns is a
// *SourceUnreadableError; an empty file is a valid (if useless) source.
func LoadSource(path string, kind Kind) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &SourceUnreadableError{Path: path, Err: err}
	}
	return Source{Kind: kind, Name: filepath.Base(path), Text: string(b)}, nil
}
