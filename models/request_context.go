// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RequestContext is the per-request state shared between the request runloop
// and the response PDK. One value exists per in-flight request and it is
// owned by the goroutine processing that request, so it is never locked.
//
// The runloop decides whether deferred exits are permitted for the phase
// being executed (DelayMode); the response PDK records at most one
// DelayedResponse and the runloop's finalizer flushes it.
type RequestContext struct {
	// RouteID identifies the matched route. It is used only for logging and
	// metrics labels.
	RouteID string

	// Phase is the name of the plugin phase currently executing
	// (e.g. "rewrite", "access").
	Phase string

	// DelayMode reports whether an exit issued in the current phase should be
	// recorded and transmitted later instead of being sent immediately.
	DelayMode bool

	// DelayedResponse is the response recorded by a deferred exit.
	// nil when no deferred exit is pending.
	DelayedResponse *DelayedResponse
}

// NewRequestContext returns an empty [RequestContext] bound to routeID.
func NewRequestContext(routeID string) *RequestContext {
	return &RequestContext{RouteID: routeID}
}

// HasDelayedResponse reports whether a deferred exit is waiting to be flushed.
func (c *RequestContext) HasDelayedResponse() bool {
	return c != nil && c.DelayedResponse != nil
}

// DelayedResponse is a response recorded by a deferred exit and transmitted
// later by the runloop finalizer.
type DelayedResponse struct {
	// Status is the HTTP status code to send, already validated to be
	// within [100, 599].
	Status int

	// Body is the payload to send: nil, a string, raw []byte, or a
	// structured (JSON-encodable) value.
	Body any

	// Headers holds optional extra response headers. Values are either
	// string or []string.
	Headers map[string]any
}
