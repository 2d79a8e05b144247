// Package clock provides the time sources handed to the simulation driver.
// The driver never reads the wall clock itself; callers pass timestamps in.
package clock

import (
	"sync"
	"time"
)

// Source reports the current time.
type Source interface {
	Now() time.Time
}

// System is the real clock, with monotonic readings.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Manual is a controllable clock for tests and replays.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
