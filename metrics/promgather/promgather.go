// Package promgather exposes collectors registered with
// github.com/prometheus/client_golang through a metrics.Gatherer, so they can
// be scraped next to metrics.Registry contents.
//
// Counter, gauge, untyped and histogram families are converted. Summaries and
// native-only histograms have no equivalent and are skipped.
package promgather

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/heroku/reqmetrics/metrics"
)

var _ metrics.Gatherer = &Gatherer{}

// Gatherer converts the output of a prometheus.Gatherer.
type Gatherer struct {
	g prometheus.Gatherer
}

// New wraps g. Passing prometheus.DefaultGatherer exposes everything
// registered through prometheus.MustRegister and the Go/process collectors.
func New(g prometheus.Gatherer) *Gatherer {
	return &Gatherer{g: g}
}

// Gather implements metrics.Gatherer.
func (g *Gatherer) Gather() ([]metrics.Family, error) {
	mfs, err := g.g.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "gathering prometheus collectors")
	}

	fams := make([]metrics.Family, 0, len(mfs))
	for _, mf := range mfs {
		f, ok := convert(mf)
		if !ok {
			continue
		}
		fams = append(fams, f)
	}
	return fams, nil
}

func convert(mf *dto.MetricFamily) (metrics.Family, bool) {
	f := metrics.Family{
		Name:       mf.GetName(),
		Help:       mf.GetHelp(),
		LabelNames: labelNames(mf.GetMetric()),
	}

	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		f.Type = metrics.TypeCounter
	case dto.MetricType_GAUGE:
		f.Type = metrics.TypeGauge
	case dto.MetricType_UNTYPED:
		f.Type = metrics.TypeUntyped
	case dto.MetricType_HISTOGRAM:
		f.Type = metrics.TypeHistogram
	default:
		return metrics.Family{}, false
	}

	for _, m := range mf.GetMetric() {
		s := metrics.Series{LabelValues: labelValues(f.LabelNames, m.GetLabel())}
		switch f.Type {
		case metrics.TypeCounter:
			s.Value = m.GetCounter().GetValue()
		case metrics.TypeGauge:
			s.Value = m.GetGauge().GetValue()
		case metrics.TypeUntyped:
			s.Value = m.GetUntyped().GetValue()
		case metrics.TypeHistogram:
			h := m.GetHistogram()
			if len(h.GetBucket()) == 0 && len(h.GetPositiveSpan())+len(h.GetNegativeSpan()) > 0 {
				return metrics.Family{}, false
			}
			s.Buckets = buckets(h)
			s.Sum = h.GetSampleSum()
			s.Count = h.GetSampleCount()
		}
		f.Series = append(f.Series, s)
	}
	return f, true
}

// labelNames returns the sorted union of label names across metrics.
func labelNames(ms []*dto.Metric) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, m := range ms {
		for _, lp := range m.GetLabel() {
			if _, ok := seen[lp.GetName()]; ok {
				continue
			}
			seen[lp.GetName()] = struct{}{}
			names = append(names, lp.GetName())
		}
	}
	sort.Strings(names)
	return names
}

func labelValues(names []string, lps []*dto.LabelPair) []string {
	values := make([]string, len(names))
	for _, lp := range lps {
		i := sort.SearchStrings(names, lp.GetName())
		if i < len(names) && names[i] == lp.GetName() {
			values[i] = lp.GetValue()
		}
	}
	return values
}

// buckets copies classic buckets and appends the implicit +Inf bucket that
// client_golang omits.
func buckets(h *dto.Histogram) []metrics.Bucket {
	bs := make([]metrics.Bucket, 0, len(h.GetBucket())+1)
	for _, b := range h.GetBucket() {
		bs = append(bs, metrics.Bucket{
			UpperBound:      b.GetUpperBound(),
			CumulativeCount: b.GetCumulativeCount(),
		})
	}
	if len(bs) == 0 || !math.IsInf(bs[len(bs)-1].UpperBound, 1) {
		bs = append(bs, metrics.Bucket{UpperBound: math.Inf(1), CumulativeCount: h.GetSampleCount()})
	}
	return bs
}
