package hmiddleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heroku/reqmetrics/hmiddleware/httpmetrics"
)

// StructuredLogger implements chi's middleware.LogFormatter with logrus.
// Install it with middleware.RequestLogger; a start and a finish line are
// logged per request.
type StructuredLogger struct {
	Logger logrus.FieldLogger
}

// StructuredLoggerEntry implements chi's middleware.LogEntry.
type StructuredLoggerEntry struct {
	Logger logrus.FieldLogger
	req    *http.Request
}

// NewLogEntry logs the start of a request and returns the entry used to log
// its end.
func (l *StructuredLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	log := l.Logger.WithFields(logrus.Fields{
		"request_id":  middleware.GetReqID(r.Context()),
		"method":      r.Method,
		"host":        r.Host,
		"path":        r.URL.RequestURI(),
		"remote_addr": r.RemoteAddr,
		"user_agent":  r.UserAgent(),
	})
	log.WithField("at", "start").Info()

	return &StructuredLoggerEntry{Logger: log, req: r}
}

// Write logs the end of a request. The matched route template is included
// when there is one.
func (l *StructuredLoggerEntry) Write(status, bytes int, elapsed time.Duration) {
	fields := logrus.Fields{
		"at":      "finish",
		"status":  status,
		"bytes":   bytes,
		"service": fmt.Sprintf("%dms", elapsed/time.Millisecond),
	}
	if endpoint := httpmetrics.RoutePattern(l.req); endpoint != "" {
		fields["endpoint"] = endpoint
	}

	l.Logger.WithFields(fields).Info()
}

// Panic is called by chi's Recoverer middleware.
func (l *StructuredLoggerEntry) Panic(v interface{}, stack []byte) {
	werr := errors.Errorf("panic: %v", v)
	l.Logger.WithField("stack", string(stack)).WithError(werr).Error("unhandled panic")
}
