package metrics

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// DefBuckets are the default histogram bucket upper bounds, in seconds.
// An implicit +Inf bucket always follows.
var DefBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Histogram counts observations into fixed cumulative buckets, partitioned by
// a fixed set of label names. It also tracks the sum and count of
// observations per series.
type Histogram struct {
	desc
	upperBounds []float64 // ascending, last is +Inf
	series      sync.Map  // labelsKey -> *LabeledHistogram
}

// NewHistogram creates a histogram with the given bucket upper bounds. Nil or
// empty buckets select DefBuckets. A trailing +Inf is added when missing.
// The label name "le" is reserved.
func NewHistogram(opts Opts, buckets []float64, labelNames ...string) (*Histogram, error) {
	d, err := newDesc(opts, labelNames, "le")
	if err != nil {
		return nil, err
	}

	if len(buckets) == 0 {
		buckets = DefBuckets
	}
	for i, b := range buckets {
		if math.IsNaN(b) {
			return nil, errors.Wrapf(ErrInvalidBuckets, "metric %s: NaN bound", d.name)
		}
		if i > 0 && b <= buckets[i-1] {
			return nil, errors.Wrapf(ErrInvalidBuckets, "metric %s: %v follows %v", d.name, b, buckets[i-1])
		}
	}
	ub := append([]float64(nil), buckets...)
	if !math.IsInf(ub[len(ub)-1], 1) {
		ub = append(ub, math.Inf(1))
	}

	h := &Histogram{desc: d, upperBounds: ub}
	if len(labelNames) == 0 {
		h.WithLabelValues()
	}
	return h, nil
}

// MustNewHistogram is like NewHistogram but panics on error.
func MustNewHistogram(opts Opts, buckets []float64, labelNames ...string) *Histogram {
	h, err := NewHistogram(opts, buckets, labelNames...)
	if err != nil {
		panic(err)
	}
	return h
}

// Name implements Collector.
func (h *Histogram) Name() string { return h.name }

// LabelNames returns the declared label names in order.
func (h *Histogram) LabelNames() []string { return append([]string(nil), h.labelNames...) }

// UpperBounds returns the bucket upper bounds including the final +Inf.
func (h *Histogram) UpperBounds() []float64 { return append([]float64(nil), h.upperBounds...) }

// GetWithLabelValues returns the series for the given label values, creating
// it empty if absent. It returns an error wrapping ErrLabelArity if the
// number of values does not match the declared label names, or
// ErrInvalidLabelValue if a value is not valid UTF-8.
func (h *Histogram) GetWithLabelValues(values ...string) (*LabeledHistogram, error) {
	if err := h.checkLabelValues(values); err != nil {
		return nil, err
	}

	key := labelsKey(values)
	if v, ok := h.series.Load(key); ok {
		return v.(*LabeledHistogram), nil
	}
	v, _ := h.series.LoadOrStore(key, &LabeledHistogram{
		labelValues: append([]string(nil), values...),
		upperBounds: h.upperBounds,
		counts:      make([]atomic.Uint64, len(h.upperBounds)),
	})
	return v.(*LabeledHistogram), nil
}

// WithLabelValues is like GetWithLabelValues but panics on error.
func (h *Histogram) WithLabelValues(values ...string) *LabeledHistogram {
	lh, err := h.GetWithLabelValues(values...)
	if err != nil {
		panic(err)
	}
	return lh
}

// Observe records v in the series of a histogram declared without labels.
func (h *Histogram) Observe(v float64) { h.WithLabelValues().Observe(v) }

// Gather implements Collector.
func (h *Histogram) Gather() Family {
	f := Family{
		Name:       h.name,
		Help:       h.help,
		Type:       TypeHistogram,
		LabelNames: h.LabelNames(),
	}
	h.series.Range(func(_, v interface{}) bool {
		f.Series = append(f.Series, v.(*LabeledHistogram).snapshot())
		return true
	})
	sortSeries(f.Series)
	return f
}

// LabeledHistogram is a histogram bound to one label-value tuple.
type LabeledHistogram struct {
	labelValues []string
	upperBounds []float64

	// counts[i] holds observations falling in (upperBounds[i-1], upperBounds[i]].
	// Cumulative counts are computed at snapshot time.
	counts  []atomic.Uint64
	sumBits atomic.Uint64
}

// Observe records v. Negative values are clamped to 0 and NaN is discarded.
func (lh *LabeledHistogram) Observe(v float64) {
	if math.IsNaN(v) {
		return
	}
	if v < 0 {
		v = 0
	}

	// +Inf is the last bound, so the loop always finds a bucket.
	for i, b := range lh.upperBounds {
		if v <= b {
			lh.counts[i].Add(1)
			break
		}
	}

	for {
		old := lh.sumBits.Load()
		next := math.Float64bits(math.Float64frombits(old) + v)
		if lh.sumBits.CompareAndSwap(old, next) {
			return
		}
	}
}

func (lh *LabeledHistogram) snapshot() Series {
	s := Series{
		LabelValues: lh.labelValues,
		Buckets:     make([]Bucket, len(lh.upperBounds)),
	}
	var cum uint64
	for i, b := range lh.upperBounds {
		cum += lh.counts[i].Load()
		s.Buckets[i] = Bucket{UpperBound: b, CumulativeCount: cum}
	}
	// Count is taken from the +Inf bucket so the two always agree within a
	// snapshot.
	s.Count = cum
	s.Sum = math.Float64frombits(lh.sumBits.Load())
	return s
}
