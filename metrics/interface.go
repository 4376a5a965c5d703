// Package metrics provides labelled counters, gauges and histograms that are
// aggregated in memory and gathered into point-in-time snapshots for
// exposition.
//
// Metrics are created with a fixed set of label names and registered in a
// Registry:
//
//	reg := metrics.NewRegistry()
//	c := metrics.MustNewCounter(metrics.Opts{Name: "name_counter", Help: "Count of names"}, "name")
//	reg.MustRegister(c)
//	c.WithLabelValues("alice").Inc()
//
// A Registry never overwrites a metric: registering a second metric under an
// existing name fails with ErrDuplicateMetricName.
package metrics

// A Collector is anything a Registry can hold. Every metric type in this
// package is a Collector.
type Collector interface {
	// Name returns the fully-qualified metric name. It must be stable.
	Name() string
	// Gather returns a snapshot of the collector's current state.
	Gather() Family
}

// A Gatherer returns snapshots of a set of metric families.
type Gatherer interface {
	Gather() ([]Family, error)
}

// An Observer receives observations, e.g. a LabeledHistogram.
type Observer interface {
	Observe(float64)
}

// simple compile time checks for interface compliance.
var (
	_ Collector = &Counter{}
	_ Collector = &Gauge{}
	_ Collector = &Histogram{}
	_ Gatherer  = &Registry{}
	_ Gatherer  = Gatherers{}
	_ Observer  = &LabeledHistogram{}
)
