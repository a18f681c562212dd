package rhythm

import (
	"math"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// Stopwatch turns a clock into the millisecond increments an Interpolator
// steps by. Sub-millisecond remainders are carried over to the next lap so no
// time is lost between frames.
type Stopwatch struct {
	mu    sync.Mutex
	clock clock.PassiveClock
	last  time.Time
}

// NewStopwatch creates a Stopwatch that starts timing immediately.
func NewStopwatch(c clock.PassiveClock) *Stopwatch {
	return &Stopwatch{
		clock: c,
		last:  c.Now(),
	}
}

// Reset restarts timing from now.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = s.clock.Now()
}

// Lap returns the whole milliseconds elapsed since the previous lap.
func (s *Stopwatch) Lap() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	if elapsed <= 0 {
		// the clock went backwards
		s.last = now
		return 0
	}

	ms := elapsed / time.Millisecond
	s.last = s.last.Add(ms * time.Millisecond)
	if ms > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ms)
}
