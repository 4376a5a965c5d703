package httpmetrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/clock"
	"github.com/heroku/reqmetrics/cmdutil/svclog"
	"github.com/heroku/reqmetrics/metrics"
)

// Label names of the built-in metrics, in declaration order.
var labelNames = []string{"endpoint", "method", "status"}

// Instrumentation failures are logged at most this often.
const (
	errLogBurst  = 5
	errLogWindow = time.Minute
)

// Metrics records request metrics and serves them. Create one with New; the
// zero value is not usable. It is safe for concurrent use.
type Metrics struct {
	namespace string

	httpRequestsTotal           *metrics.Counter
	httpRequestsDurationSeconds *metrics.Histogram

	// builtin holds the two metrics above. It is private to each Metrics so
	// that any number of Metrics values can share one custom registry
	// without registering the built-ins twice.
	builtin *metrics.Registry

	// custom holds caller-registered metrics.
	custom *metrics.Registry

	extra []metrics.Gatherer

	clock  clock.Clock
	logger logrus.FieldLogger
	errLog *svclog.SampleLogger
}

// New returns a Metrics value. Without WithRegistry or WithDefaultRegistry
// a fresh, empty custom registry is used.
//
// An error is returned when the namespace is not a valid metric name prefix
// or the buckets are invalid. Both are wiring mistakes; MustNew panics
// instead.
func New(opts ...Option) (*Metrics, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := configFromEnv()
	if o.config != nil {
		cfg = *o.config
	}
	if o.registry == nil {
		o.registry = metrics.NewRegistry()
	}
	if o.logger == nil {
		o.logger = logrus.StandardLogger()
	}
	if o.clock == nil {
		o.clock = clock.Default
	}

	ns := cfg.namespace()

	total, err := metrics.NewCounter(metrics.Opts{
		Namespace: ns,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labelNames...)
	if err != nil {
		return nil, errors.Wrap(err, "creating request counter")
	}

	duration, err := metrics.NewHistogram(metrics.Opts{
		Namespace: ns,
		Name:      "http_requests_duration_seconds",
		Help:      "HTTP request duration in seconds for all requests",
	}, o.buckets, labelNames...)
	if err != nil {
		return nil, errors.Wrap(err, "creating request duration histogram")
	}

	builtin := metrics.NewRegistry()
	builtin.MustRegister(total, duration)

	return &Metrics{
		namespace:                   ns,
		httpRequestsTotal:           total,
		httpRequestsDurationSeconds: duration,
		builtin:                     builtin,
		custom:                      o.registry,
		extra:                       o.extra,
		clock:                       o.clock,
		logger:                      o.logger,
		errLog:                      svclog.NewSampleLogger(o.logger, errLogBurst, errLogWindow),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Metrics {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Registry returns the registry for application metrics. Metrics registered
// here are exposed by Handler. The built-in request metrics are not in it.
func (m *Metrics) Registry() *metrics.Registry {
	return m.custom
}

// Namespace returns the prefix of the built-in metric names.
func (m *Metrics) Namespace() string {
	return m.namespace
}
