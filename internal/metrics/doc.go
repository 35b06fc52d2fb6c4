// Package metrics exposes Prometheus instrumentation for the Yookve API.
//
// A Collector owns its own registry and registers request, booking,
// payment and external travel API metrics. The Middleware method wraps
// the HTTP stack; Handler serves the /metrics scrape endpoint.
package metrics
