// Package exposition encodes gathered metric families in the Prometheus
// plain-text exposition format, version 0.0.4.
package exposition

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/heroku/reqmetrics/metrics"
)

// ContentType is the media type of the encoded output.
const ContentType = "text/plain; version=0.0.4; charset=utf-8"

// ErrUnknownType is returned for families whose type the encoder cannot
// render.
var ErrUnknownType = errors.New("unknown metric type")

var (
	helpEscaper  = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	labelEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, `"`, `\"`)
)

// Encode writes families to w, in order. Families without series are
// skipped. Nothing is written if any family has an unknown type or a series
// whose label values do not match its label names; the error names it.
func Encode(w io.Writer, families []metrics.Family) error {
	enc := NewEncoder(w)
	if err := enc.Encode(families); err != nil {
		return err
	}
	return enc.Flush()
}

// Encoder writes families to an underlying writer.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder returns an Encoder writing to w. Call Flush when done.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes families. Output for multiple calls is concatenated.
// Nothing is written when any family is invalid.
func (e *Encoder) Encode(families []metrics.Family) error {
	for _, f := range families {
		if err := validate(f); err != nil {
			return err
		}
	}
	for _, f := range families {
		e.encodeFamily(f)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

func validate(f metrics.Family) error {
	switch f.Type {
	case metrics.TypeCounter, metrics.TypeGauge, metrics.TypeUntyped, metrics.TypeHistogram:
	default:
		return errors.Wrapf(ErrUnknownType, "family %s: %q", f.Name, f.Type)
	}
	for _, s := range f.Series {
		if len(s.LabelValues) != len(f.LabelNames) {
			return errors.Wrapf(metrics.ErrLabelArity, "family %s: %d names, %d values",
				f.Name, len(f.LabelNames), len(s.LabelValues))
		}
	}
	return nil
}

// encodeFamily writes a validated family.
func (e *Encoder) encodeFamily(f metrics.Family) {
	if len(f.Series) == 0 {
		return
	}

	e.w.WriteString("# HELP ")
	e.w.WriteString(f.Name)
	e.w.WriteByte(' ')
	helpEscaper.WriteString(e.w, f.Help)
	e.w.WriteString("\n# TYPE ")
	e.w.WriteString(f.Name)
	e.w.WriteByte(' ')
	e.w.WriteString(string(f.Type))
	e.w.WriteByte('\n')

	for _, s := range f.Series {
		if f.Type != metrics.TypeHistogram {
			e.writeSample(f.Name, f.LabelNames, s.LabelValues, "", formatFloat(s.Value))
			continue
		}

		for _, b := range s.Buckets {
			e.writeSample(f.Name+"_bucket", f.LabelNames, s.LabelValues,
				formatFloat(b.UpperBound), strconv.FormatUint(b.CumulativeCount, 10))
		}
		e.writeSample(f.Name+"_sum", f.LabelNames, s.LabelValues, "", formatFloat(s.Sum))
		e.writeSample(f.Name+"_count", f.LabelNames, s.LabelValues, "", strconv.FormatUint(s.Count, 10))
	}
}

// writeSample writes one sample line. A non-empty le is appended as the last
// label.
func (e *Encoder) writeSample(name string, labelNames, labelValues []string, le, value string) {
	e.w.WriteString(name)
	if len(labelNames) > 0 || le != "" {
		e.w.WriteByte('{')
		for i, ln := range labelNames {
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.w.WriteString(ln)
			e.w.WriteString(`="`)
			labelEscaper.WriteString(e.w, labelValues[i])
			e.w.WriteByte('"')
		}
		if le != "" {
			if len(labelNames) > 0 {
				e.w.WriteByte(',')
			}
			e.w.WriteString(`le="`)
			e.w.WriteString(le)
			e.w.WriteByte('"')
		}
		e.w.WriteByte('}')
	}
	e.w.WriteByte(' ')
	e.w.WriteString(value)
	e.w.WriteByte('\n')
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
