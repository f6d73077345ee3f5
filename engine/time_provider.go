// Package engine supplies the time sources that drive the frame loop
package engine

import "time"

// Clock is the time source the frame loop reads
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer converts successive clock readings into per-frame elapsed time
// A stalled frame (suspend, debugger, slow terminal) is clamped to max so timers do not jump
type FrameTimer struct {
	clock Clock
	last  time.Time
	max   time.Duration
}

// NewFrameTimer starts measuring from the clock's current reading
func NewFrameTimer(clock Clock, max time.Duration) *FrameTimer {
	return &FrameTimer{clock: clock, last: clock.Now(), max: max}
}

// Delta returns the time since the previous call, in [0, max]
func (f *FrameTimer) Delta() time.Duration {
	now := f.clock.Now()
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		return 0
	}
	if f.max > 0 && d > f.max {
		return f.max
	}
	return d
}

// Reset discards time elapsed since the previous reading
func (f *FrameTimer) Reset() {
	f.last = f.clock.Now()
}
