package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/highlands/lib/config"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSink owns the glfw window and the GL context that comes with it.
type WindowSink struct {
	cfg    *config.WindowCfg
	title  string
	logger *slog.Logger

	Window *glfw.Window
}

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{
		cfg:    cfg,
		title:  cfg.Title,
		logger: slog.With("module", "window"),
	}
}

// Start creates the window and makes its context current on the calling
// thread, which must stay locked to its OS thread.
func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	w.logger.Debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(w.cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, w.cfg.GLVersion.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, w.cfg.GLVersion.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("could not create window: %w", err)
	}

	window.MakeContextCurrent()
	if w.cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w.Window = window
	w.logger.Info(fmt.Sprintf("Opened %dx%d window with an OpenGL %s core context", w.cfg.Width, w.cfg.Height, w.cfg.GLVersion))
	return nil
}

// SetTitle only talks to glfw when the title changed.
func (w *WindowSink) SetTitle(title string) {
	if title == w.title {
		return
	}
	w.title = title
	w.Window.SetTitle(title)
}

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on HiDPI screens.
func (w *WindowSink) FramebufferSize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) Close() {
	if w.Window == nil {
		return
	}
	w.Window.Destroy()
	w.Window = nil
	glfw.Terminate()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
