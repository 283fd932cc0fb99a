package scheduler

import "time"

// Scheduler defers callbacks for later execution. Every scheduled room
// callback re-validates room state at fire time, so cancellation is never
// required: stale callbacks degrade to no-ops.
type Scheduler interface {
	// AfterFunc runs fn on its own goroutine after the given delay
	AfterFunc(d time.Duration, fn func())
}

// RealScheduler implements Scheduler with the runtime timer
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

// AfterFunc schedules fn after the delay
func (s *RealScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
