package httpmetrics

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Liftoff walks routes and calls OnStartup with every route found. Call it
// once after all routes are declared and before serving.
func (m *Metrics) Liftoff(routes chi.Routes) error {
	var found []Route
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		found = append(found, Route{Template: route, Method: method})
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "walking routes")
	}

	m.OnStartup(found)
	m.logger.WithFields(logrus.Fields{
		"at":     "liftoff",
		"routes": len(found),
	}).Debug("request metrics initialized")
	return nil
}
