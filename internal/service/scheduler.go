package service

import (
	"log"
	"sync"
	"time"
)

// Scheduler arms one-shot timers that auto-start shows at their start
// time. It is best-effort: the fire path has no caller to report to,
// so business failures (the show was started manually, or already
// ended) and even panics are swallowed and logged. Timers live only in
// this process; a restart loses them, and a show whose start time has
// already passed is never auto-started retroactively.
type Scheduler struct {
	start func(showID string) error

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewScheduler constructs a Scheduler that invokes start when a timer
// fires. It is typically wired to ShowService.Start.
func NewScheduler(start func(showID string) error) *Scheduler {
	return &Scheduler{start: start, timers: make(map[string]*time.Timer)}
}

// ScheduleStart arms (or re-arms) the auto-start timer for a show. A
// start time that is not strictly in the future is ignored; the show
// stays REGISTERED until a manual start. Re-scheduling an already
// armed show cancels the previous timer first.
func (s *Scheduler) ScheduleStart(showID string, startTime time.Time) {
	delay := time.Until(startTime)
	if delay <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(showID)
	s.timers[showID] = time.AfterFunc(delay, func() { s.fire(showID) })
}

// Cancel stops any pending auto-start for the show; it is a no-op when
// none is armed. The facade calls this before every manual start, so a
// manual start always wins against a timer that has not fired yet.
func (s *Scheduler) Cancel(showID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(showID)
}

func (s *Scheduler) cancelLocked(showID string) {
	if t, ok := s.timers[showID]; ok {
		t.Stop()
		delete(s.timers, showID)
	}
}

// fire runs on the timer's goroutine. The bookkeeping entry is removed
// whatever the outcome.
func (s *Scheduler) fire(showID string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scheduler: auto-start %s panicked: %v", showID, r)
		}
		s.mu.Lock()
		delete(s.timers, showID)
		s.mu.Unlock()
	}()

	if err := s.start(showID); err != nil {
		// Lost the race against a manual start, or the show is
		// gone; nobody is waiting on this timer.
		log.Printf("scheduler: auto-start %s skipped: %v", showID, err)
	}
}
