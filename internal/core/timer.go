package core

import "time"

// DeltaClock measures wall time elapsed between frames.
type DeltaClock struct {
	last time.Time
	now  func() time.Time
}

// NewDeltaClock constructs a clock reading time.Now.
func NewDeltaClock() *DeltaClock {
	return &DeltaClock{now: time.Now}
}

// Tick returns the seconds elapsed since the previous call. The first call
// returns 0. A clock that runs backwards also yields 0.
func (c *DeltaClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta.Seconds()
}

// Reset forgets the previous reading so the next Tick returns 0.
func (c *DeltaClock) Reset() { c.last = time.Time{} }

// FixedDelta returns the frame duration in seconds for the given
// ticks-per-second rate, defaulting to 60.
func FixedDelta(tps int) float64 {
	if tps <= 0 {
		tps = 60
	}
	return 1 / float64(tps)
}
