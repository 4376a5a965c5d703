package hmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntryWrite(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	logger, hook := test.NewNullLogger()
	l := &StructuredLogger{Logger: logger}

	e := l.NewLogEntry(req)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "start", hook.LastEntry().Data["at"])

	e.Write(200, 0, 100*time.Millisecond)

	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "finish", entry.Data["at"])
	assert.Equal(t, 200, entry.Data["status"])
	assert.Equal(t, "100ms", entry.Data["service"])
	assert.NotContains(t, entry.Data, "endpoint")
}

func TestLogEntryPanic(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	logger, hook := test.NewNullLogger()
	l := &StructuredLogger{Logger: logger}

	e := l.NewLogEntry(req)
	e.Panic("boom", []byte("AB"))

	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "unhandled panic", entry.Message)
	assert.Equal(t, "AB", entry.Data["stack"])
}

func TestRequestLoggerRouteTemplate(t *testing.T) {
	logger, hook := test.NewNullLogger()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&StructuredLogger{Logger: logger}))
	r.Get("/hello/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hi"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/hello/bob", nil))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].Data["request_id"])
	assert.Equal(t, "/hello/bob", entries[0].Data["path"])
	assert.Equal(t, "/hello/{name}", entries[1].Data["endpoint"])
	assert.Equal(t, 200, entries[1].Data["status"])
}
