// Package clock provides the time source injected into entities, specifications
// and event factories. Nothing in the domain layer reads the wall clock directly.
package clock

//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks Clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant. Implementations must be safe for
// concurrent reads; the same clock is shared by every entity built from it.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

func NewFixed(at time.Time) Fixed { return Fixed{At: at.UTC()} }

func (f Fixed) Now() time.Time { return f.At }

// Stepping returns an instant that advances by Step on every call, so two
// consecutive reads are always strictly ordered.
type Stepping struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewStepping returns a clock whose first reading is start.
// A non-positive step is replaced by one nanosecond.
func NewStepping(start time.Time, step time.Duration) *Stepping {
	if step <= 0 {
		step = time.Nanosecond
	}
	return &Stepping{next: start.UTC(), step: step}
}

func (s *Stepping) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.next
	s.next = s.next.Add(s.step)
	return now
}

// Verify interfaces are satisfied.
var (
	_ Clock = System{}
	_ Clock = Fixed{}
	_ Clock = (*Stepping)(nil)
)
