package demo

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/fosdem/highlands/lib/api"
	"github.com/fosdem/highlands/lib/config"
	"github.com/fosdem/highlands/lib/kbdctl"
	"github.com/fosdem/highlands/lib/metrics"
	"github.com/fosdem/highlands/lib/overlay"
	"github.com/fosdem/highlands/lib/rendering"
	"github.com/fosdem/highlands/lib/rendering/renderconsts"
	"github.com/fosdem/highlands/lib/rendering/shaders"
	"github.com/fosdem/highlands/lib/sink/windowsink"
	"github.com/fosdem/highlands/lib/stats"
	"github.com/fosdem/highlands/lib/theatre"
	"github.com/fosdem/highlands/lib/utils"
)

// MakeWindowAndRender runs the demo until the window is closed or shutdown
// is requested. Shader problems are logged and leave the window running
// with nothing drawn.
func MakeWindowAndRender(cfg *config.Config) {
	theatre := theatre.New(cfg)
	stats := stats.New()

	window := windowsink.New(cfg.Window)
	err := window.Start()
	if err != nil {
		log.Fatalf("could not open window: %s", err)
	}
	defer window.Close()

	err = rendering.Init()
	if err != nil {
		log.Fatalf("could not initialise renderer: %s", err)
	}

	api.ServeInBackground(theatre, stats, cfg.Api)

	program, err := BuildProgram(shaders.NewBuilder(shaders.GLDriver{}, cfg.Shaders.InfoLogSize), cfg)
	defer program.Release()
	theatre.SetShaderStatus(err)
	if err != nil {
		slog.Warn("no usable shader program, the quad will not be drawn", "module", "demo")
	}

	mesh := rendering.NewMesh(renderconsts.QuadVertices)
	defer mesh.Release()

	renderer := rendering.NewRenderer(program, mesh, utils.ColourVec(cfg.ClearColour))
	renderer.Start(window.FramebufferSize())

	kbdctl.SetupShortcutKeys(theatre, window)

	frameMetrics := metrics.NewFrameMetrics()
	info := overlay.New(cfg.Window.Title, 500*time.Millisecond)

	for !theatre.ShutdownRequested() {
		drawn := renderer.DrawFrame(theatre.RenderEnabled())
		frameMetrics.Count(drawn)
		stats.Update(drawn)

		window.SetTitle(info.Text(theatre.OverlayEnabled(), stats.Snapshot(), theatre.RenderEnabled(), theatre.ShaderStatus()))
		window.SwapBuffers()
		if window.ShouldClose() {
			theatre.RequestShutdown()
		}

		kbdctl.Poll()
	}
}

// BuildProgram loads the configured shader sources and links them. Any
// failure, unreadable file included, comes back as an error together with a
// nil program.
func BuildProgram(builder *shaders.Builder, cfg *config.Config) (*shaders.Program, error) {
	shaderer, err := shaders.NewShaderer(&shaders.ShaderData{
		Version:    shaders.GLSLVersion(cfg.Window.GLVersion.Major, cfg.Window.GLVersion.Minor),
		FillColour: utils.ColourVec(cfg.FillColour),
	})
	if err != nil {
		return nil, fmt.Errorf("could not get shaders: %w", err)
	}

	vertex, vErr := shaderer.Source(shaders.Vertex, string(cfg.Shaders.Vertex))
	fragment, fErr := shaderer.Source(shaders.Fragment, string(cfg.Shaders.Fragment))
	if err := errors.Join(vErr, fErr); err != nil {
		slog.Error(err.Error(), "module", "shaders")
		return nil, err
	}

	return builder.Build(vertex, fragment)
}
