// Package http implements the gateway's HTTP surface.
//
// The proxy router mounts one request runner per configured route path and
// answers unmatched requests through the response PDK. The status router
// exposes Prometheus metrics and the gateway identity. Request tracing,
// access logging and request metrics are handled by middleware in this
// package.
package http
