package httpmetrics

import (
	"bytes"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/metrics"
	"github.com/heroku/reqmetrics/metrics/exposition"
)

// Gather snapshots the built-in registry, the custom registry and any
// gatherers added with WithGatherers, in that order.
func (m *Metrics) Gather() ([]metrics.Family, error) {
	gs := make(metrics.Gatherers, 0, 2+len(m.extra))
	gs = append(gs, m.builtin, m.custom)
	gs = append(gs, m.extra...)
	return gs.Gather()
}

// Encode encodes the current state of all metrics to w.
func (m *Metrics) Encode(w io.Writer) error {
	fams, err := m.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	return exposition.Encode(w, fams)
}

// Scrape returns the content type and body of a metrics scrape.
func (m *Metrics) Scrape() (contentType, body string, err error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return "", "", err
	}
	return exposition.ContentType, buf.String(), nil
}

// Handler serves Scrape. Mount it on GET; requests to it go through
// Middleware like any other and are counted.
func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct, body, err := m.Scrape()
		if err != nil {
			m.logger.WithFields(logrus.Fields{
				"at":   "scrape",
				"path": r.URL.Path,
			}).WithError(err).Error()
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", ct)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	})
}
