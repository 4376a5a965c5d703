package metrics

import (
	"time"

	"github.com/heroku/reqmetrics/clock"
)

// DurationTimer acts as a stopwatch, sending observations in seconds to a
// wrapped Observer. It's a bit of helpful syntax sugar for
// o.Observe(time.Since(x).Seconds()).
type DurationTimer struct {
	o     Observer
	clock clock.Clock
	t     time.Time
}

// NewDurationTimer wraps the given observer and records the current time
// from c. A nil clock means clock.Default.
func NewDurationTimer(o Observer, c clock.Clock) *DurationTimer {
	if c == nil {
		c = clock.Default
	}
	return &DurationTimer{o: o, clock: c, t: c.Now()}
}

// ObserveDuration records the seconds elapsed since the timer was created.
func (t *DurationTimer) ObserveDuration() {
	ObserveSince(t.o, t.t, t.clock.Now())
}

// ObserveSince records t1-t0 in seconds. Negative durations are recorded as 0.
func ObserveSince(o Observer, t0, t1 time.Time) {
	d := t1.Sub(t0)
	if d < 0 {
		d = 0
	}
	o.Observe(d.Seconds())
}
