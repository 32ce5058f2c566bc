// Package overlay renders the debug overlay. There is no text rendering in
// the GL pipeline, so the overlay lives in the window title.
package overlay

import (
	"fmt"
	"time"

	"github.com/fosdem/highlands/lib/stats"
	"github.com/fosdem/highlands/lib/theatre"
)

type Overlay struct {
	title    string
	interval time.Duration

	last    time.Time
	current string
}

func New(title string, interval time.Duration) *Overlay {
	return &Overlay{title: title, interval: interval, current: title}
}

// Text returns the title to show. With the overlay disabled that is the
// plain title; otherwise the status line, recomputed at most once per
// interval.
func (o *Overlay) Text(enabled bool, s stats.Snapshot, render bool, shaders theatre.ShaderStatus) string {
	return o.text(time.Now(), enabled, s, render, shaders)
}

func (o *Overlay) text(now time.Time, enabled bool, s stats.Snapshot, render bool, shaders theatre.ShaderStatus) string {
	if !enabled {
		o.last = time.Time{}
		o.current = o.title
		return o.current
	}
	if !o.last.IsZero() && now.Sub(o.last) < o.interval {
		return o.current
	}
	o.last = now
	o.current = fmt.Sprintf("%s | %d fps | render %s | shaders %s",
		o.title, s.FPS, onOff(render), shaderState(shaders))
	return o.current
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func shaderState(s theatre.ShaderStatus) string {
	if s.Valid {
		return "ok"
	}
	return "error"
}
