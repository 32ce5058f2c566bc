package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ShaderCompiles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "highlands_shader_compiles_total",
		Help: "Total number of shader compilations, by stage and outcome",
	}, []string{"kind", "result"})
	ProgramLinks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "highlands_program_links_total",
		Help: "Total number of shader program links, by outcome",
	}, []string{"result"})
	Frames = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "highlands_frames_total",
		Help: "Total number of frames presented, by whether the quad was drawn",
	}, []string{"state"})
)

// FrameMetrics holds the per-state frame counters so the render loop does
// not look up labels every frame.
type FrameMetrics struct {
	Drawn   prometheus.Counter
	Skipped prometheus.Counter
}

func NewFrameMetrics() FrameMetrics {
	f := FrameMetrics{
		Drawn:   Frames.WithLabelValues("drawn"),
		Skipped: Frames.WithLabelValues("skipped"),
	}
	f.Drawn.Add(0)
	f.Skipped.Add(0)
	return f
}

func (f FrameMetrics) Count(drawn bool) {
	if drawn {
		f.Drawn.Inc()
	} else {
		f.Skipped.Inc()
	}
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
