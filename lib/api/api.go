package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fosdem/highlands/lib/api/docs"
	"github.com/fosdem/highlands/lib/config"
	"github.com/fosdem/highlands/lib/metrics"
	"github.com/fosdem/highlands/lib/stats"
	"github.com/fosdem/highlands/lib/theatre"
)

//go:generate go tool swag init --generalInfo api.go --output docs --outputTypes go

// @title			highlands
// @version		1.0
// @description	Control and status api for the highlands OpenGL demo
type Api struct {
	srv     http.Server
	mux     *http.ServeMux
	cfg     *config.ApiCfg
	theatre *theatre.Theatre
	logger  *slog.Logger

	Stats *stats.Stats

	wsMu      sync.Mutex
	wsClients map[*websocket.Conn]*sync.Mutex
}

func New(cfg *config.ApiCfg, t *theatre.Theatre, s *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.theatre = t
	a.logger = slog.With("module", "api")
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]*sync.Mutex)
	a.Stats = s

	t.AddEventListener("set-render", func(t *theatre.Theatre, data interface{}) {
		event := data.(theatre.EventDataSetRender)
		event.Event = "set-render"
		a.logger.Info(fmt.Sprintf("Rendering switched %s", onOff(event.Render)))
		a.broadcast(event)
	})
	t.AddEventListener("shader-status", func(t *theatre.Theatre, data interface{}) {
		a.broadcast(EventShaderStatus{
			Event:        "shader-status",
			ShaderStatus: data.(theatre.ShaderStatus),
		})
	})

	a.routes()
	return a
}

type EventShaderStatus struct {
	Event string
	theatre.ShaderStatus
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/render", a.getRender)
	a.mux.HandleFunc("POST /api/render", a.setRender)
	a.mux.HandleFunc("POST /api/render/toggle", a.toggleRender)
	a.mux.HandleFunc("GET /api/shaders", a.getShaders)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Stop the demo
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.logger.Info("shutting down as per api request")
	a.theatre.RequestShutdown()
	a.writeOK(w)
}

// @Summary	Frame and client statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Outcome of the last shader program build
// @Router		/api/shaders [get]
// @Tags		shaders
// @Produce	json
// @Success	200	{object}	theatre.ShaderStatus
func (a *Api) getShaders(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.theatre.ShaderStatus())
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode shader status: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) writeOK(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.logger.Error(fmt.Sprintf("could not write response: %s", err))
		return
	}
}

func ServeInBackground(theatre *theatre.Theatre, s *stats.Stats, cfg *config.ApiCfg) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, theatre, s)

		theApi.logger.Info(fmt.Sprintf("starting web server on %s", cfg.Bind))
		go func() {
			err := theApi.Serve()
			if err != nil {
				theApi.logger.Error(fmt.Sprintf("could not start web server: %s", err))
			}
		}()
	}
	return theApi
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
