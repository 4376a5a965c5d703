package metrics

import "sort"

// Type is the exposition type of a metric family.
type Type string

// Metric family types.
const (
	TypeCounter   Type = "counter"
	TypeGauge     Type = "gauge"
	TypeHistogram Type = "histogram"
	TypeUntyped   Type = "untyped"
)

// Family is an immutable snapshot of one metric and all of its series.
type Family struct {
	Name       string
	Help       string
	Type       Type
	LabelNames []string
	Series     []Series
}

// Series is the state of one label-value tuple at gather time.
//
// Value is set for counters, gauges and untyped metrics. Buckets, Sum and
// Count are set for histograms.
type Series struct {
	LabelValues []string

	Value float64

	Buckets []Bucket
	Sum     float64
	Count   uint64
}

// Bucket is one cumulative histogram bucket.
type Bucket struct {
	UpperBound      float64
	CumulativeCount uint64
}

// sortSeries orders series by their label values so output is stable across
// gathers.
func sortSeries(s []Series) {
	sort.Slice(s, func(i, j int) bool {
		a, b := s[i].LabelValues, s[j].LabelValues
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}
