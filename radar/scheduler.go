// radar/scheduler.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import (
	"log/slog"
	"sync"
	"time"

	"github.com/avionix/radarview/log"
)

// scheduler drives redraw requests at the configured update rate,
// independent of how often properties change. It is either stopped (the
// initial state) or running; each tick invokes the redraw callback
// exactly once, immediately, with no queueing or batching.
type scheduler struct {
	mu       sync.Mutex
	rate     float32
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
	redraw   func()
	lg       *log.Logger
}

func newScheduler(rate float32, redraw func(), lg *log.Logger) *scheduler {
	return &scheduler{
		rate:   rate,
		redraw: redraw,
		lg:     lg,
	}
}

// tickInterval converts an updates-per-second rate to the tick period.
func tickInterval(rate float32) time.Duration {
	return time.Duration(float64(time.Second) / float64(rate))
}

func (s *scheduler) start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

func (s *scheduler) startLocked() {
	if s.ticker != nil {
		return
	}

	s.interval = tickInterval(s.rate)
	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})
	s.lg.Debug("scheduler started", slog.Duration("interval", s.interval))

	go func(tick <-chan time.Time, done <-chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-tick:
				s.redraw()
			}
		}
	}(s.ticker.C, s.done)
}

// stop halts firing; stopping an already-stopped scheduler does nothing.
func (s *scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *scheduler) stopLocked() {
	if s.ticker == nil {
		return
	}

	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.lg.Debug("scheduler stopped")
}

// reconfigure records the new rate; if the scheduler is running and the
// computed interval actually changed, the cadence is restarted with the
// new interval. Otherwise the running cadence (if any) is untouched and
// the rate takes effect on the next start.
func (s *scheduler) reconfigure(rate float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rate = rate
	if s.ticker == nil || tickInterval(rate) == s.interval {
		return
	}

	s.stopLocked()
	s.startLocked()
}

func (s *scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}
