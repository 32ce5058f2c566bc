package config

import (
	"fmt"

	yaml "github.com/goccy/go-yaml"
)

// GLVersion is an OpenGL context version written as "major.minor".
type GLVersion struct {
	Major int
	Minor int
}

func ParseGLVersion(s string) (GLVersion, error) {
	var v GLVersion
	var rest string
	n, _ := fmt.Sscanf(s, "%d.%d%s", &v.Major, &v.Minor, &rest)
	if n != 2 || v.Minor < 0 || v.Minor > 9 {
		return GLVersion{}, fmt.Errorf("%q is not a major.minor OpenGL version", s)
	}
	return v, nil
}

func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v *GLVersion) UnmarshalYAML(b []byte) error {
	var s string
	err := yaml.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	*v, err = ParseGLVersion(s)
	return err
}
