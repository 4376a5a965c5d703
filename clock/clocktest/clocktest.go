// Package clocktest provides deterministic clocks for tests.
package clocktest

import (
	"sync"
	"time"

	"github.com/heroku/reqmetrics/clock"
)

// Epoch is the starting time of clocks created by NewManual.
var Epoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// New returns a test clock that will respond to Now() calls using the times
// provided, in order. Once exhausted, the last time is repeated.
func New(ts ...time.Time) clock.Clock {
	var mu sync.Mutex
	return clock.Func(func() (t time.Time) {
		mu.Lock()
		defer mu.Unlock()

		if len(ts) == 0 {
			return
		}
		t = ts[0]
		if len(ts) > 1 {
			ts = ts[1:]
		}
		return
	})
}

// NewFromDurations returns a test clock whose successive Now() calls return
// Epoch shifted by the passed durations.
func NewFromDurations(ds ...time.Duration) clock.Clock {
	ts := make([]time.Time, 0, len(ds))
	for _, d := range ds {
		ts = append(ts, Epoch.Add(d))
	}
	return New(ts...)
}

// Manual is a clock that only moves when told to. It is safe for concurrent
// use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock set to Epoch.
func NewManual() *Manual {
	return &Manual{now: Epoch}
}

// Now implements clock.Clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
