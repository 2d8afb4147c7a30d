package game

import "time"

// Scoreboard is the game clock. It runs from the start of a session until
// the outcome is decided, excluding time spent paused.
type Scoreboard struct {
	started  time.Time
	pausedAt time.Time
	stopped  time.Time
	paused   time.Duration
}

func (s *Scoreboard) Start(now time.Time) {
	*s = Scoreboard{started: now}
}

func (s *Scoreboard) Pause(now time.Time) {
	if s.pausedAt.IsZero() && s.stopped.IsZero() {
		s.pausedAt = now
	}
}

func (s *Scoreboard) Resume(now time.Time) {
	if !s.pausedAt.IsZero() {
		s.paused += now.Sub(s.pausedAt)
		s.pausedAt = time.Time{}
	}
}

func (s *Scoreboard) Stop(now time.Time) {
	if s.stopped.IsZero() {
		s.Resume(now)
		s.stopped = now
	}
}

func (s *Scoreboard) Elapsed(now time.Time) time.Duration {
	switch {
	case !s.stopped.IsZero():
		now = s.stopped
	case !s.pausedAt.IsZero():
		now = s.pausedAt
	}
	return now.Sub(s.started) - s.paused
}

func (s *Scoreboard) String(now time.Time) string {
	return s.Elapsed(now).Truncate(time.Second).String()
}
