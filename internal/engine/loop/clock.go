package loop

import "time"

// Clock reports seconds elapsed since Start.
type Clock interface {
	Start()
	Elapsed() float64
}

type monotonicClock struct {
	start time.Time
}

// NewClock returns a clock backed by the monotonic wall clock.
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Start() {
	c.start = time.Now()
}

func (c *monotonicClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}
