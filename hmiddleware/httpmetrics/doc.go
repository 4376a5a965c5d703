// Package httpmetrics provides middleware that records per-request counters
// and latency histograms and serves them in the Prometheus text format.
//
// Two metrics are recorded for every request that matched a route:
//
//	<namespace>_http_requests_total             counter
//	<namespace>_http_requests_duration_seconds  histogram
//
// Both are labelled with endpoint, method and status. The endpoint is the
// route template the router matched (e.g. /hello/{name}), never the request
// path, so the number of series stays bounded no matter what paths clients
// send. Requests that match no route are not recorded.
//
// The namespace defaults to "rocket" and can be changed with the
// ROCKET_PROMETHEUS_NAMESPACE environment variable, read once when the
// Metrics value is created.
//
// The built-in metrics live in a registry private to each Metrics value.
// Application metrics go in a second, caller-visible registry returned by
// Registry. Both are written by Handler, built-ins first.
package httpmetrics
