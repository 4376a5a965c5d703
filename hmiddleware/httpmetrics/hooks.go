package httpmetrics

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/httpstatus"
	"github.com/heroku/reqmetrics/metrics"
)

// Route is a statically known route.
type Route struct {
	// Template is the pattern the route was declared with, e.g.
	// /hello/{name}.
	Template string
	Method   string
}

// Completed describes a finished request.
type Completed struct {
	// Route is the template of the matched route. It is empty when the
	// request matched no route.
	Route  string
	Method string
	Status int
}

// OnStartup creates the (template, method, "200") series of both built-in
// metrics for every route, so the families are visible before any traffic.
// Routes without a template or with the wildcard method are skipped.
func (m *Metrics) OnStartup(routes []Route) {
	ok := httpstatus.Text(200)
	for _, rt := range routes {
		if rt.Template == "" || rt.Method == "" || rt.Method == "*" {
			continue
		}
		if _, err := m.httpRequestsTotal.GetWithLabelValues(rt.Template, rt.Method, ok); err != nil {
			m.logger.WithFields(logrus.Fields{
				"at":       "startup",
				"endpoint": rt.Template,
			}).WithError(err).Warn()
			continue
		}
		if _, err := m.httpRequestsDurationSeconds.GetWithLabelValues(rt.Template, rt.Method, ok); err != nil {
			m.logger.WithFields(logrus.Fields{
				"at":       "startup",
				"endpoint": rt.Template,
			}).WithError(err).Warn()
		}
	}
}

// Observe records a completed request. Requests without a route are
// ignored so that arbitrary client paths never become label values. The
// duration is measured from the timer started by StartTimer on ctx; without
// one only the counter is updated.
//
// Observe never fails. Problems are logged at a limited rate.
func (m *Metrics) Observe(ctx context.Context, c Completed) {
	if c.Route == "" {
		return
	}

	status := httpstatus.Text(c.Status)

	lc, err := m.httpRequestsTotal.GetWithLabelValues(c.Route, c.Method, status)
	if err != nil {
		m.errLog.Warn(err, logrus.Fields{"at": "observe", "metric": m.httpRequestsTotal.Name()})
	} else {
		lc.Inc()
	}

	start, ok := timerStart(ctx)
	if !ok {
		return
	}

	lh, err := m.httpRequestsDurationSeconds.GetWithLabelValues(c.Route, c.Method, status)
	if err != nil {
		m.errLog.Warn(err, logrus.Fields{"at": "observe", "metric": m.httpRequestsDurationSeconds.Name()})
		return
	}
	metrics.ObserveSince(lh, start, m.clock.Now())
}
