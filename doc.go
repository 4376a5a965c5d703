// Package reqmetrics is the root of a set of packages for instrumenting HTTP
// services with Prometheus style request metrics.
//
//	metrics                  counters, gauges, histograms and registries
//	metrics/exposition       the Prometheus text format encoder
//	metrics/kitmetrics       go-kit metrics adapters
//	metrics/promgather       client_golang gatherer bridge
//	hmiddleware/httpmetrics  chi middleware, startup hook and scrape handler
//	httpstatus               allocation free status code labels
//
// cmd/hello-metrics is a runnable example service.
package reqmetrics
