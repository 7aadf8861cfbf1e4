package glint

import "time"

// TimeSource supplies the monotonic timestamps, in seconds, that drive
// Spray.Tick. The epoch is arbitrary; only differences matter.
type TimeSource interface {
	Now() float64
}

// Clock is a wall-clock TimeSource measuring seconds since NewClock.
// Pause freezes it, so a host can stop animation time while every spray
// is idle and Resume on the next trigger without a gap.
//
// Clock is single-threaded, like the rest of the kernel.
type Clock struct {
	start    time.Time
	pausedAt time.Time
	paused   time.Duration
}

// NewClock creates a running Clock at time 0.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Now returns the seconds elapsed since NewClock, excluding paused spans.
func (c *Clock) Now() float64 {
	if !c.pausedAt.IsZero() {
		return (c.pausedAt.Sub(c.start) - c.paused).Seconds()
	}
	return (time.Since(c.start) - c.paused).Seconds()
}

// Pause freezes the clock. Pausing a paused clock is a no-op.
func (c *Clock) Pause() {
	if c.pausedAt.IsZero() {
		c.pausedAt = time.Now()
	}
}

// Resume unfreezes the clock. Resuming a running clock is a no-op.
func (c *Clock) Resume() {
	if !c.pausedAt.IsZero() {
		c.paused += time.Since(c.pausedAt)
		c.pausedAt = time.Time{}
	}
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return !c.pausedAt.IsZero()
}

// ManualClock is a TimeSource advanced explicitly by the caller, for tests
// and offline rendering where frames are produced faster or slower than
// real time.
type ManualClock struct {
	now float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 {
	return c.now
}

// Set jumps the clock to now.
func (c *ManualClock) Set(now float64) {
	c.now = now
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.now += dt
}
