package metrics

import (
	"math"
	"sync"
	"sync/atomic"
)

// Gauge is a float metric that can go up and down, partitioned by a fixed set
// of label names.
type Gauge struct {
	desc
	series sync.Map // labelsKey -> *LabeledGauge
}

// NewGauge creates a gauge. It is not registered anywhere.
func NewGauge(opts Opts, labelNames ...string) (*Gauge, error) {
	d, err := newDesc(opts, labelNames)
	if err != nil {
		return nil, err
	}
	g := &Gauge{desc: d}
	if len(labelNames) == 0 {
		g.WithLabelValues()
	}
	return g, nil
}

// MustNewGauge is like NewGauge but panics on error.
func MustNewGauge(opts Opts, labelNames ...string) *Gauge {
	g, err := NewGauge(opts, labelNames...)
	if err != nil {
		panic(err)
	}
	return g
}

// Name implements Collector.
func (g *Gauge) Name() string { return g.name }

// LabelNames returns the declared label names in order.
func (g *Gauge) LabelNames() []string { return append([]string(nil), g.labelNames...) }

// GetWithLabelValues returns the series for the given label values.
func (g *Gauge) GetWithLabelValues(values ...string) (*LabeledGauge, error) {
	if err := g.checkLabelValues(values); err != nil {
		return nil, err
	}

	key := labelsKey(values)
	if v, ok := g.series.Load(key); ok {
		return v.(*LabeledGauge), nil
	}
	v, _ := g.series.LoadOrStore(key, &LabeledGauge{
		labelValues: append([]string(nil), values...),
	})
	return v.(*LabeledGauge), nil
}

// WithLabelValues is like GetWithLabelValues but panics on error.
func (g *Gauge) WithLabelValues(values ...string) *LabeledGauge {
	lg, err := g.GetWithLabelValues(values...)
	if err != nil {
		panic(err)
	}
	return lg
}

// Set sets the series of a gauge declared without labels.
func (g *Gauge) Set(v float64) { g.WithLabelValues().Set(v) }

// Gather implements Collector.
func (g *Gauge) Gather() Family {
	f := Family{
		Name:       g.name,
		Help:       g.help,
		Type:       TypeGauge,
		LabelNames: g.LabelNames(),
	}
	g.series.Range(func(_, v interface{}) bool {
		lg := v.(*LabeledGauge)
		f.Series = append(f.Series, Series{
			LabelValues: lg.labelValues,
			Value:       lg.Value(),
		})
		return true
	})
	sortSeries(f.Series)
	return f
}

// LabeledGauge is a gauge bound to one label-value tuple.
type LabeledGauge struct {
	labelValues []string
	bits        atomic.Uint64
}

// Set stores v.
func (lg *LabeledGauge) Set(v float64) { lg.bits.Store(math.Float64bits(v)) }

// Add atomically adds delta, which may be negative.
func (lg *LabeledGauge) Add(delta float64) {
	for {
		old := lg.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if lg.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

// Inc adds 1.
func (lg *LabeledGauge) Inc() { lg.Add(1) }

// Dec subtracts 1.
func (lg *LabeledGauge) Dec() { lg.Add(-1) }

// Value returns the current value.
func (lg *LabeledGauge) Value() float64 { return math.Float64frombits(lg.bits.Load()) }
