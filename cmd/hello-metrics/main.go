// Command hello-metrics is a small greeting service instrumented with
// httpmetrics. Its metrics are served on /metrics.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	gokitmetrics "github.com/go-kit/kit/metrics"
	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/cmdutil/service"
	"github.com/heroku/reqmetrics/hmiddleware"
	"github.com/heroku/reqmetrics/hmiddleware/httpmetrics"
	"github.com/heroku/reqmetrics/metrics"
	"github.com/heroku/reqmetrics/metrics/kitmetrics"
)

func main() {
	svc, err := service.New(nil)
	if err != nil {
		logrus.WithError(err).Fatal("configuring service")
	}

	m, err := httpmetrics.New(httpmetrics.WithLogger(svc.Logger))
	if err != nil {
		svc.Logger.WithError(err).Fatal("creating metrics")
	}

	r, err := newRouter(m, svc.Logger)
	if err != nil {
		svc.Logger.WithError(err).Fatal("creating router")
	}

	srv, err := service.HTTP(svc.Logger, r)
	if err != nil {
		svc.Logger.WithError(err).Fatal("creating http server")
	}
	svc.Add(srv)

	if err := svc.Run(); err != nil {
		svc.Logger.WithError(err).Error()
		os.Exit(1)
	}
}

type person struct {
	Age int `json:"age"`
}

// newRouter returns the service routes with m installed and initialized.
func newRouter(m *httpmetrics.Metrics, logger logrus.FieldLogger) (chi.Router, error) {
	names, err := metrics.NewCounter(metrics.Opts{
		Name: "name_counter",
		Help: "Count of names",
	}, "name")
	if err != nil {
		return nil, err
	}
	ageHist, err := metrics.NewHistogram(metrics.Opts{
		Name: "person_age_years",
		Help: "Ages posted to /hello/{name}",
	}, []float64{18, 30, 50, 70})
	if err != nil {
		return nil, err
	}
	for _, c := range []metrics.Collector{names, ageHist} {
		if err := m.Registry().Register(c); err != nil {
			return nil, err
		}
	}
	var ages gokitmetrics.Histogram = kitmetrics.NewHistogram(ageHist)

	r := chi.NewRouter()
	r.Use(
		m.Middleware,
		middleware.RequestID,
		middleware.RequestLogger(&hmiddleware.StructuredLogger{Logger: logger}),
		middleware.Recoverer,
	)

	r.Get("/hello/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		lc, err := names.GetWithLabelValues(name)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"at":   "count-name",
				"path": r.URL.Path,
			}).WithError(err).Info()
			http.Error(w, "invalid name", http.StatusBadRequest)
			return
		}
		lc.Inc()
		fmt.Fprintf(w, "Hello, %s!", name)
	})

	r.Post("/hello/{name}", func(w http.ResponseWriter, r *http.Request) {
		var p person
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			logger.WithFields(logrus.Fields{
				"at":   "decode-person",
				"path": r.URL.Path,
			}).WithError(err).Info()
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		ages.Observe(float64(p.Age))
		fmt.Fprintf(w, "Hello, %d year old named %s!", p.Age, chi.URLParam(r, "name"))
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	if err := m.Liftoff(r); err != nil {
		return nil, err
	}
	return r, nil
}
