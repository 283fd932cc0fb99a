package mocks

import (
	"sync"
	"time"

	"github.com/lukemay/blankparty/internal/dependencies/scheduler"
)

// ScheduledFunc is a callback captured by MockScheduler
type ScheduledFunc struct {
	Delay time.Duration
	Fn    func()
}

// MockScheduler records scheduled callbacks so tests can fire them
// deterministically instead of waiting on real timers
type MockScheduler struct {
	mu      sync.Mutex
	pending []ScheduledFunc
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// AfterFunc records the callback without running it
func (s *MockScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, ScheduledFunc{Delay: d, Fn: fn})
}

// Pending returns the number of callbacks waiting to fire
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// FireNext runs the oldest pending callback. Returns false if none pending.
func (s *MockScheduler) FireNext() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()

	next.Fn()
	return true
}

// FireAll runs every currently pending callback, including callbacks
// scheduled by the ones it fires
func (s *MockScheduler) FireAll() {
	for s.FireNext() {
	}
}

// NextDelay returns the delay of the oldest pending callback
func (s *MockScheduler) NextDelay() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0, false
	}
	return s.pending[0].Delay, true
}

// Drop discards all pending callbacks without running them
func (s *MockScheduler) Drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}
