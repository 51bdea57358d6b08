// Package schedule drives fixed-rate game ticks from a replaceable clock.
package schedule

import "time"

// Clock is the time source a Scheduler reads.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to.
type ManualClock struct {
	t time.Time
}

// NewManualClock starts a clock at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Scheduler keeps at most one pending tick. A tick is armed only after the
// previous one has been reported done, so ticks never overlap or pile up.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	next     time.Time
	armed    bool
}

// New returns a stopped scheduler.
func New(clock Clock, interval time.Duration) *Scheduler {
	return &Scheduler{clock: clock, interval: interval}
}

// Interval is the delay used for the next arm.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// SetInterval changes the cadence. A pending tick is re-armed from now.
func (s *Scheduler) SetInterval(d time.Duration) {
	s.interval = d
	if s.armed {
		s.Arm()
	}
}

// Arm schedules the next tick one interval from now.
func (s *Scheduler) Arm() {
	s.next = s.clock.Now().Add(s.interval)
	s.armed = true
}

// Stop drops the pending tick, if any.
func (s *Scheduler) Stop() { s.armed = false }

// Armed reports whether a tick is pending.
func (s *Scheduler) Armed() bool { return s.armed }

// Due reports whether the pending tick should fire now. A due tick is
// consumed; the caller runs it and then calls Arm for the next one.
func (s *Scheduler) Due() bool {
	if !s.armed || s.clock.Now().Before(s.next) {
		return false
	}
	s.armed = false
	return true
}
