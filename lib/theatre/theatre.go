package theatre

import (
	"sync"
	"sync/atomic"

	"github.com/fosdem/highlands/lib/config"
)

// Theatre is the run state shared between the render loop, the keyboard and
// the api.
type Theatre struct {
	render            atomic.Bool
	overlay           atomic.Bool
	shutdownRequested atomic.Bool

	shaderMu     sync.Mutex
	shaderStatus ShaderStatus

	listenerMu sync.Mutex
	listener   map[string][]EventListener
}

// ShaderStatus describes the outcome of the last program build.
type ShaderStatus struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func New(cfg *config.Config) *Theatre {
	t := &Theatre{
		listener: make(map[string][]EventListener),
	}
	t.render.Store(cfg.Render == nil || *cfg.Render)
	t.overlay.Store(cfg.Overlay)
	return t
}

func (t *Theatre) RenderEnabled() bool {
	return t.render.Load()
}

func (t *Theatre) SetRender(on bool) {
	if t.render.Swap(on) != on {
		t.invoke("set-render", EventDataSetRender{Render: on})
	}
}

func (t *Theatre) ToggleRender() bool {
	for {
		old := t.render.Load()
		if t.render.CompareAndSwap(old, !old) {
			t.invoke("set-render", EventDataSetRender{Render: !old})
			return !old
		}
	}
}

func (t *Theatre) OverlayEnabled() bool {
	return t.overlay.Load()
}

func (t *Theatre) ToggleOverlay() bool {
	for {
		old := t.overlay.Load()
		if t.overlay.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (t *Theatre) ShutdownRequested() bool {
	return t.shutdownRequested.Load()
}

func (t *Theatre) RequestShutdown() {
	t.shutdownRequested.Store(true)
}

// SetShaderStatus records the result of building the shader program.
func (t *Theatre) SetShaderStatus(err error) {
	status := ShaderStatus{Valid: err == nil}
	if err != nil {
		status.Error = err.Error()
	}

	t.shaderMu.Lock()
	t.shaderStatus = status
	t.shaderMu.Unlock()

	t.invoke("shader-status", status)
}

func (t *Theatre) ShaderStatus() ShaderStatus {
	t.shaderMu.Lock()
	defer t.shaderMu.Unlock()
	return t.shaderStatus
}
