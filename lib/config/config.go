package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/highlands/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window      *WindowCfg
	Shaders     *ShadersCfg
	ClearColour string `yaml:"clear_colour"`
	FillColour  string `yaml:"fill_colour"`
	Render      *bool
	Overlay     bool
	LogLevel    string `yaml:"log_level"`
	Api         *ApiCfg
}

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	GLVersion GLVersion `yaml:"gl_version"`
	Resizable bool
	VSync     bool `yaml:"vsync"`
}

type ShadersCfg struct {
	Vertex      CfgPath
	Fragment    CfgPath
	InfoLogSize int `yaml:"info_log_size"`
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

const (
	DefaultTitle       = "Highlands ~> Main"
	DefaultClearColour = "#2d2d85ff"
	DefaultFillColour  = "#ff8033ff"
)

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

// Default is the configuration used when no file is given: the built-in
// shaders in a 1280x1440 window.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 && c.Window.Height == 0 {
		c.Window.Width = 1280
		c.Window.Height = 1440
	}
	if c.Window.GLVersion == (GLVersion{}) {
		c.Window.GLVersion = GLVersion{Major: 4, Minor: 1}
	}
	if c.Shaders == nil {
		c.Shaders = &ShadersCfg{}
	}
	if c.Shaders.InfoLogSize == 0 {
		c.Shaders.InfoLogSize = 512
	}
	if c.ClearColour == "" {
		c.ClearColour = DefaultClearColour
	}
	if c.FillColour == "" {
		c.FillColour = DefaultFillColour
	}
	if c.Render == nil {
		render := true
		c.Render = &render
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders are invalid: %w", err)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("clear_colour %s is not a valid RGBA hex colour", c.ClearColour)
	}
	if !utils.ColourValidate(c.FillColour) {
		return fmt.Errorf("fill_colour %s is not a valid RGBA hex colour", c.FillColour)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api bind address must be specified")
	}
	return nil
}

// Level is the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return level, fmt.Errorf("log_level %s is invalid: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s (%dx%d, OpenGL %s core)\n", c.Window.Title, c.Window.Width, c.Window.Height, c.Window.GLVersion))

	b.WriteString("\nShaders:\n")
	b.WriteString(fmt.Sprintf("  vertex:   %s\n", c.Shaders.Vertex.OrBuiltin()))
	b.WriteString(fmt.Sprintf("  fragment: %s\n", c.Shaders.Fragment.OrBuiltin()))
	b.WriteString(fmt.Sprintf("  info log: %d bytes\n", c.Shaders.InfoLogSize))

	b.WriteString("\nColours:\n")
	b.WriteString(fmt.Sprintf("  clear: %s\n", c.ClearColour))
	b.WriteString(fmt.Sprintf("  fill:  %s\n", c.FillColour))

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi:\n  %s\n", c.Api.Bind))
	}

	return b.String()
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if w.GLVersion.Major < 3 || (w.GLVersion.Major == 3 && w.GLVersion.Minor < 3) {
		return fmt.Errorf("gl_version %s is too old, a 3.3 core context is the minimum", w.GLVersion)
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	if s.InfoLogSize < 2 {
		return fmt.Errorf("info_log_size must be at least 2")
	}
	for _, p := range []CfgPath{s.Vertex, s.Fragment} {
		if p == "" {
			continue
		}
		ext := strings.ToLower(filepath.Ext(string(p)))
		switch ext {
		case ".vert", ".vs", ".frag", ".fs", ".glsl", ".wgsl":
		default:
			return fmt.Errorf("%s has unknown shader extension %q", p, ext)
		}
	}
	return nil
}
