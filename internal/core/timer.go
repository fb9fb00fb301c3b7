package core

import "time"

const (
	// MaxInterval is the slowest period a Clock accepts.
	MaxInterval = 10 * time.Second
	// maxCatchUp bounds how many overdue steps a single poll may report.
	maxCatchUp = 8
)

// Clock schedules recurring simulation steps at a fixed interval. It is
// polled from the host loop, so it never runs steps on its own goroutine.
type Clock struct {
	// Now supplies the current time; tests replace it with a fake source.
	Now func() time.Time

	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
}

// NewClock constructs a stopped Clock with the given interval.
func NewClock(interval time.Duration) *Clock {
	c := &Clock{Now: time.Now}
	c.interval = ClampInterval(interval)
	return c
}

// ClampInterval bounds d to [0, MaxInterval].
func ClampInterval(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}

// Interval returns the current step period.
func (c *Clock) Interval() time.Duration { return c.interval }

// Running reports whether steps are being scheduled.
func (c *Clock) Running() bool { return c.running }

// Start begins scheduling. Calling Start on a running clock does nothing.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.accumulator = 0
	c.last = c.Now()
}

// Stop cancels scheduling. It is safe to call on a stopped clock.
func (c *Clock) Stop() {
	c.running = false
	c.accumulator = 0
}

// SetInterval changes the period. A running clock is stopped and restarted so
// the new period is measured from now.
func (c *Clock) SetInterval(d time.Duration) {
	c.interval = ClampInterval(d)
	if c.running {
		c.Stop()
		c.Start()
	}
}

// Due reports how many steps are owed since the previous poll. Intervals of
// one millisecond or less yield one step per poll.
func (c *Clock) Due() int {
	if !c.running {
		return 0
	}
	now := c.Now()
	delta := now.Sub(c.last)
	c.last = now
	if c.interval <= time.Millisecond {
		return 1
	}
	c.accumulator += delta
	steps := 0
	for c.accumulator >= c.interval && steps < maxCatchUp {
		c.accumulator -= c.interval
		steps++
	}
	if steps == maxCatchUp {
		c.accumulator = 0
	}
	return steps
}
