package httpmetrics

import (
	"context"
	"time"
)

type timerKey struct{}

type timerState struct {
	start time.Time
}

// StartTimer records the current time as the start of the request carried
// by ctx. It is meant to run before routing. When ctx already carries a
// timer its start is reset and ctx is returned unchanged.
func (m *Metrics) StartTimer(ctx context.Context) context.Context {
	now := m.clock.Now()
	if ts, ok := ctx.Value(timerKey{}).(*timerState); ok {
		ts.start = now
		return ctx
	}
	return context.WithValue(ctx, timerKey{}, &timerState{start: now})
}

func timerStart(ctx context.Context) (time.Time, bool) {
	ts, ok := ctx.Value(timerKey{}).(*timerState)
	if !ok {
		return time.Time{}, false
	}
	return ts.start, true
}
