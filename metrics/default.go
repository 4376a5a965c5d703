package metrics

import "sync"

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide registry. It is created on first
// use and lives until the process exits. Nothing is exposed from it unless a
// caller opts in, e.g. with httpmetrics.WithDefaultRegistry.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// RegisterCounter creates a counter and registers it with DefaultRegistry.
func RegisterCounter(opts Opts, labelNames ...string) (*Counter, error) {
	c, err := NewCounter(opts, labelNames...)
	if err != nil {
		return nil, err
	}
	if err := DefaultRegistry().Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// RegisterGauge creates a gauge and registers it with DefaultRegistry.
func RegisterGauge(opts Opts, labelNames ...string) (*Gauge, error) {
	g, err := NewGauge(opts, labelNames...)
	if err != nil {
		return nil, err
	}
	if err := DefaultRegistry().Register(g); err != nil {
		return nil, err
	}
	return g, nil
}

// RegisterHistogram creates a histogram and registers it with DefaultRegistry.
func RegisterHistogram(opts Opts, buckets []float64, labelNames ...string) (*Histogram, error) {
	h, err := NewHistogram(opts, buckets, labelNames...)
	if err != nil {
		return nil, err
	}
	if err := DefaultRegistry().Register(h); err != nil {
		return nil, err
	}
	return h, nil
}
