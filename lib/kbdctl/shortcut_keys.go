package kbdctl

import (
	"log/slog"

	"github.com/fosdem/highlands/lib/sink/windowsink"
	"github.com/fosdem/highlands/lib/theatre"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupShortcutKeys(theatre *theatre.Theatre, ws *windowsink.WindowSink) {
	ws.Window.SetKeyCallback(keyCallback(theatre))
}

func Poll() {
	glfw.PollEvents()
}

func keyCallback(theatre *theatre.Theatre) func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	logger := slog.With("module", "kbdctl")

	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			if key == glfw.KeyQ &&
				mods&glfw.ModControl != 0 &&
				mods&glfw.ModShift != 0 {
				logger.Info("told to quit, exiting")
				theatre.RequestShutdown()
			}
		}
		if action == glfw.Press {
			switch key {
			case glfw.KeyEscape:
				logger.Info("escape pressed, exiting")
				theatre.RequestShutdown()
			case glfw.KeyR:
				if theatre.ToggleRender() {
					logger.Info("rendering enabled")
				} else {
					logger.Info("rendering disabled")
				}
			case glfw.KeyF1:
				theatre.ToggleOverlay()
			}
		}
	}
}
