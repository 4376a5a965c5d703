package httpmetrics

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Middleware times and records every request handled by next. Install it
// with Use on the outermost chi router so the full route template is known
// once next returns.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(m.StartTimer(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		st := ww.Status()
		if st == 0 {
			// Assume no Write or WriteHeader means OK.
			st = http.StatusOK
		}

		m.Observe(r.Context(), Completed{
			Route:  RoutePattern(r),
			Method: r.Method,
			Status: st,
		})
	})
}

// RoutePattern returns the template of the chi route that handled r, or ""
// when r was not routed by chi or matched no route.
//
// Each router that handles a request appends the pattern it matched, so a
// request to /api/hello/bob through a sub-router mounted on /api carries
//
//	[]string{"/api/*", "/hello/{name}"}
//
// which becomes /api/hello/{name}, the same form chi.Walk reports.
//
// A mount point is appended before the sub-router looks for a route, so a
// request the sub-router cannot serve still carries /api/*. Such requests
// are reported as unrouted by asking the router whether any handler matches.
func RoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.RoutePatterns) == 0 {
		return ""
	}
	if rctx.Routes != nil && !rctx.Routes.Match(chi.NewRouteContext(), r.Method, routePath(r)) {
		return ""
	}
	return strings.ReplaceAll(strings.Join(rctx.RoutePatterns, ""), "/*/", "/")
}

// routePath is the path chi's root router matches against.
func routePath(r *http.Request) string {
	if r.URL.RawPath != "" {
		return r.URL.RawPath
	}
	return r.URL.Path
}
