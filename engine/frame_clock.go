package engine

import "time"

// FrameClock turns successive ticks into simulation dt in seconds
// With a fixed step every tick returns the step; otherwise the measured gap, clamped to maxDelta
type FrameClock struct {
	time     TimeProvider
	fixed    time.Duration
	maxDelta time.Duration

	last    time.Time
	started bool
}

// NewFrameClock creates a clock; fixed <= 0 selects measured timing, maxDelta <= 0 disables the clamp
func NewFrameClock(tp TimeProvider, fixed, maxDelta time.Duration) *FrameClock {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &FrameClock{time: tp, fixed: fixed, maxDelta: maxDelta}
}

// Tick returns dt since the previous tick; the first measured tick returns 0
func (c *FrameClock) Tick() float64 {
	if c.fixed > 0 {
		return c.fixed.Seconds()
	}

	now := c.time.Now()
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	return d.Seconds()
}
