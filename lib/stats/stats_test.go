package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestUpdate(t *testing.T) {
	s := New()
	start := s.start

	for i := 0; i < 30; i++ {
		s.update(start.Add(time.Duration(i)*10*time.Millisecond), i%3 != 0)
	}
	if got := s.Snapshot().FPS; got != 0 {
		t.Errorf("FPS = %d before a second has passed", got)
	}

	s.update(start.Add(1500*time.Millisecond), true)
	s.SetWsClients(2)

	want := Snapshot{
		FramesDrawn:   21,
		FramesSkipped: 10,
		Uptime:        1.5,
		FPS:           31,
		WsClients:     2,
	}
	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Errorf("Snapshot() (-want +got):\n%s", diff)
	}
}
