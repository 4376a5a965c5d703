package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/heroku/reqmetrics/clock/clocktest"
)

type recorder struct{ observations []float64 }

func (r *recorder) Observe(v float64) { r.observations = append(r.observations, v) }

func TestDurationTimer(t *testing.T) {
	var r recorder
	c := clocktest.NewFromDurations(0, 250*time.Millisecond)

	timer := NewDurationTimer(&r, c)
	timer.ObserveDuration()

	assert.Equal(t, []float64{0.25}, r.observations)
}

func TestObserveSinceClampsNegative(t *testing.T) {
	var r recorder
	now := time.Now()

	ObserveSince(&r, now, now.Add(-time.Second))
	ObserveSince(&r, now, now.Add(1500*time.Microsecond))

	assert.Equal(t, []float64{0, 0.0015}, r.observations)
}
