package httpmetrics

import (
	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/clock"
	"github.com/heroku/reqmetrics/metrics"
)

type options struct {
	registry *metrics.Registry
	config   *Config
	logger   logrus.FieldLogger
	clock    clock.Clock
	buckets  []float64
	extra    []metrics.Gatherer
}

// An Option configures New.
type Option func(*options)

// WithRegistry exposes the metrics in reg alongside the built-ins. reg may
// be shared by several Metrics values; the built-ins are never added to it.
func WithRegistry(reg *metrics.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithDefaultRegistry is WithRegistry(metrics.DefaultRegistry()), so metrics
// created with metrics.RegisterCounter and friends are exposed.
func WithDefaultRegistry() Option {
	return WithRegistry(metrics.DefaultRegistry())
}

// WithConfig uses cfg instead of reading the environment.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

// WithLogger sets the logger used for instrumentation and scrape failures.
// It defaults to logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock sets the clock used to time requests.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithBuckets overrides the duration histogram buckets, in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// WithGatherers adds sources that are written after the custom registry on
// each scrape, e.g. a promgather.Gatherer.
func WithGatherers(gs ...metrics.Gatherer) Option {
	return func(o *options) {
		o.extra = append(o.extra, gs...)
	}
}
