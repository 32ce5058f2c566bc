package stats

import (
	"sync"
	"time"
)

type Stats struct {
	sync.Mutex
	snapshot Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

// Snapshot is the json view of the stats.
type Snapshot struct {
	FramesDrawn   uint64  `json:"frames_drawn"`
	FramesSkipped uint64  `json:"frames_skipped"`
	Uptime        float64 `json:"uptime"`
	FPS           uint64  `json:"fps"`
	WsClients     int     `json:"ws_clients"`
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update is called once per presented frame.
func (s *Stats) Update(drawn bool) {
	s.update(time.Now(), drawn)
}

func (s *Stats) update(now time.Time, drawn bool) {
	s.Lock()
	defer s.Unlock()

	if drawn {
		s.snapshot.FramesDrawn++
	} else {
		s.snapshot.FramesSkipped++
	}

	s.frameCounter++
	if now.Sub(s.frameTimer) > 1*time.Second {
		s.snapshot.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.snapshot.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetWsClients(n int) {
	s.Lock()
	defer s.Unlock()
	s.snapshot.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.Lock()
	defer s.Unlock()
	return s.snapshot
}
