// Package kitmetrics adapts labelled metrics to the go-kit metrics
// interfaces, so code instrumented against go-kit can report into a
// metrics.Registry.
//
// go-kit passes labels as alternating key/value pairs. They are resolved by
// name into the metric's declared label order: undeclared keys are ignored
// and declared labels that were never supplied get the value "unknown",
// following go-kit's convention for missing values. go-kit's interfaces have
// no error return, so updates with label values that are not valid UTF-8 are
// dropped.
package kitmetrics

import (
	kitmetrics "github.com/go-kit/kit/metrics"

	"github.com/heroku/reqmetrics/metrics"
)

// simple compile time checks for interface compliance.
var (
	_ kitmetrics.Counter   = &Counter{}
	_ kitmetrics.Gauge     = &Gauge{}
	_ kitmetrics.Histogram = &Histogram{}
)

const missingValue = "unknown"

// Counter adapts a *metrics.Counter to kitmetrics.Counter.
type Counter struct {
	c   *metrics.Counter
	lvs []string
}

// NewCounter wraps c.
func NewCounter(c *metrics.Counter) *Counter {
	return &Counter{c: c}
}

// With implements kitmetrics.Counter.
func (c *Counter) With(labelValues ...string) kitmetrics.Counter {
	return &Counter{c: c.c, lvs: with(c.lvs, labelValues)}
}

// Add implements kitmetrics.Counter. The underlying counter is integral, so
// fractional and negative deltas are truncated towards zero.
func (c *Counter) Add(delta float64) {
	if delta < 1 {
		return
	}
	if lc, err := c.c.GetWithLabelValues(resolve(c.c.LabelNames(), c.lvs)...); err == nil {
		lc.Add(uint64(delta))
	}
}

// Gauge adapts a *metrics.Gauge to kitmetrics.Gauge.
type Gauge struct {
	g   *metrics.Gauge
	lvs []string
}

// NewGauge wraps g.
func NewGauge(g *metrics.Gauge) *Gauge {
	return &Gauge{g: g}
}

// With implements kitmetrics.Gauge.
func (g *Gauge) With(labelValues ...string) kitmetrics.Gauge {
	return &Gauge{g: g.g, lvs: with(g.lvs, labelValues)}
}

// Set implements kitmetrics.Gauge.
func (g *Gauge) Set(value float64) {
	if lg, err := g.g.GetWithLabelValues(resolve(g.g.LabelNames(), g.lvs)...); err == nil {
		lg.Set(value)
	}
}

// Add implements kitmetrics.Gauge.
func (g *Gauge) Add(delta float64) {
	if lg, err := g.g.GetWithLabelValues(resolve(g.g.LabelNames(), g.lvs)...); err == nil {
		lg.Add(delta)
	}
}

// Histogram adapts a *metrics.Histogram to kitmetrics.Histogram.
type Histogram struct {
	h   *metrics.Histogram
	lvs []string
}

// NewHistogram wraps h.
func NewHistogram(h *metrics.Histogram) *Histogram {
	return &Histogram{h: h}
}

// With implements kitmetrics.Histogram.
func (h *Histogram) With(labelValues ...string) kitmetrics.Histogram {
	return &Histogram{h: h.h, lvs: with(h.lvs, labelValues)}
}

// Observe implements kitmetrics.Histogram.
func (h *Histogram) Observe(value float64) {
	if lh, err := h.h.GetWithLabelValues(resolve(h.h.LabelNames(), h.lvs)...); err == nil {
		lh.Observe(value)
	}
}

// with appends key/value pairs without sharing the parent's backing array.
// An odd trailing key is paired with "unknown".
func with(lvs, more []string) []string {
	out := make([]string, 0, len(lvs)+len(more)+1)
	out = append(out, lvs...)
	out = append(out, more...)
	if len(more)%2 == 1 {
		out = append(out, missingValue)
	}
	return out
}

// resolve orders key/value pairs by names. Later pairs win.
func resolve(names, lvs []string) []string {
	values := make([]string, len(names))
	for i := range values {
		values[i] = missingValue
	}
	for i := 0; i+1 < len(lvs); i += 2 {
		for j, n := range names {
			if n == lvs[i] {
				values[j] = lvs[i+1]
			}
		}
	}
	return values
}
