package metrics

import (
	"sync"
	"sync/atomic"
)

// Counter is a monotonically increasing integer metric partitioned by a fixed
// set of label names. Series are created on first use and never removed.
type Counter struct {
	desc
	series sync.Map // labelsKey -> *LabeledCounter
}

// NewCounter creates a counter. It is not registered anywhere.
func NewCounter(opts Opts, labelNames ...string) (*Counter, error) {
	d, err := newDesc(opts, labelNames)
	if err != nil {
		return nil, err
	}
	c := &Counter{desc: d}
	if len(labelNames) == 0 {
		c.WithLabelValues()
	}
	return c, nil
}

// MustNewCounter is like NewCounter but panics on error.
func MustNewCounter(opts Opts, labelNames ...string) *Counter {
	c, err := NewCounter(opts, labelNames...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name implements Collector.
func (c *Counter) Name() string { return c.name }

// LabelNames returns the declared label names in order.
func (c *Counter) LabelNames() []string { return append([]string(nil), c.labelNames...) }

// GetWithLabelValues returns the series for the given label values, creating
// it with value 0 if absent. It returns an error wrapping ErrLabelArity if the
// number of values does not match the declared label names, or
// ErrInvalidLabelValue if a value is not valid UTF-8.
func (c *Counter) GetWithLabelValues(values ...string) (*LabeledCounter, error) {
	if err := c.checkLabelValues(values); err != nil {
		return nil, err
	}

	key := labelsKey(values)
	if v, ok := c.series.Load(key); ok {
		return v.(*LabeledCounter), nil
	}
	v, _ := c.series.LoadOrStore(key, &LabeledCounter{
		labelValues: append([]string(nil), values...),
	})
	return v.(*LabeledCounter), nil
}

// WithLabelValues is like GetWithLabelValues but panics on error. Use it
// for label values the program controls.
func (c *Counter) WithLabelValues(values ...string) *LabeledCounter {
	lc, err := c.GetWithLabelValues(values...)
	if err != nil {
		panic(err)
	}
	return lc
}

// Inc increments the series of a counter declared without labels.
func (c *Counter) Inc() { c.WithLabelValues().Inc() }

// Gather implements Collector.
func (c *Counter) Gather() Family {
	f := Family{
		Name:       c.name,
		Help:       c.help,
		Type:       TypeCounter,
		LabelNames: c.LabelNames(),
	}
	c.series.Range(func(_, v interface{}) bool {
		lc := v.(*LabeledCounter)
		f.Series = append(f.Series, Series{
			LabelValues: lc.labelValues,
			Value:       float64(lc.Value()),
		})
		return true
	})
	sortSeries(f.Series)
	return f
}

// LabeledCounter is a counter bound to one label-value tuple.
type LabeledCounter struct {
	labelValues []string
	v           atomic.Uint64
}

// Inc atomically adds 1.
func (lc *LabeledCounter) Inc() { lc.v.Add(1) }

// Add atomically adds n.
func (lc *LabeledCounter) Add(n uint64) { lc.v.Add(n) }

// Value returns the current count.
func (lc *LabeledCounter) Value() uint64 { return lc.v.Load() }
