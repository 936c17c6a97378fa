package discovery

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// startupDelay is how long after (re)configuration the initial cycle
// fires, so the rest of the process finishes starting first.
const startupDelay = 5 * time.Second

// Scheduler owns the recurring-cycle timer. Reconfiguring atomically
// replaces any armed schedule; at most one recurrence and one pending
// initial run exist at a time.
type Scheduler struct {
	trigger func()
	delay   time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	initial *time.Timer
}

// NewScheduler creates a scheduler that calls trigger on every firing.
// The trigger is expected to be the service's own guarded entry point,
// so a firing that lands mid-cycle is simply dropped there.
func NewScheduler(trigger func()) *Scheduler {
	return &Scheduler{
		trigger: trigger,
		delay:   startupDelay,
	}
}

// Configure arms a recurring trigger every intervalHours hours plus one
// initial run after a short startup delay. An interval of zero (or less)
// disables recurring scraping entirely. Any previously armed schedule is
// torn down first.
func (s *Scheduler) Configure(intervalHours int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmLocked()

	if intervalHours <= 0 {
		log.Println("INFO: automatic scraping disabled")
		return
	}

	log.Printf("INFO: scheduling background scraping every %d hours", intervalHours)

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %dh", intervalHours), s.trigger); err != nil {
		log.Printf("ERROR: failed to schedule scraping: %v", err)
		return
	}
	c.Start()
	s.cron = c

	s.initial = time.AfterFunc(s.delay, s.trigger)
}

// Stop disarms the schedule.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarmLocked()
}

// disarmLocked tears down the recurrence and any pending initial run.
// Callers hold mu.
func (s *Scheduler) disarmLocked() {
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
	if s.initial != nil {
		s.initial.Stop()
		s.initial = nil
	}
}

// Armed reports whether a recurring schedule is currently active.
func (s *Scheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}
