// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/models"
)

// Recorder receives response lifecycle events, typically to update metrics.
type Recorder interface {
	// ResponseSent is called once per emitted response.
	ResponseSent(status int)
	// ResponseDelayed is called when an exit is recorded for later flushing.
	ResponseDelayed()
	// ErrorBodyScrubbed is called when a 500 body is replaced before emission.
	ErrorBodyScrubbed()
}

type nopRecorder struct{}

func (nopRecorder) ResponseSent(int)   {}
func (nopRecorder) ResponseDelayed()   {}
func (nopRecorder) ErrorBodyScrubbed() {}

// Options configures a [Response].
type Options struct {
	// ServerHeader is the value of the Server header set on every emitted
	// response, in "<product>/<version>" form. See [ServerIdent].
	ServerHeader string

	// Encoder serializes bodies. Defaults to [NewJSONEncoder].
	Encoder Encoder

	// Recorder receives lifecycle events. Defaults to a no-op recorder.
	Recorder Recorder
}

// Response is the response PDK of a single request.
//
// It is owned by the goroutine serving the request and must not be shared.
type Response struct {
	transport Transport
	rctx      *models.RequestContext

	serverHeader string
	encoder      Encoder
	recorder     Recorder

	logger *logger.Logger
}

// New binds a [Response] to the transport and request context of one request.
// A nil rctx is replaced by an empty context and a nil logger by [logger.Nop].
func New(transport Transport, rctx *models.RequestContext, opts Options, log *logger.Logger) *Response {
	if rctx == nil {
		rctx = &models.RequestContext{}
	}
	if opts.Encoder == nil {
		opts.Encoder = NewJSONEncoder()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Response{
		transport:    transport,
		rctx:         rctx,
		serverHeader: opts.ServerHeader,
		encoder:      opts.Encoder,
		recorder:     opts.Recorder,
		logger:       log,
	}
}

// ServerIdent formats the Server header value for product and version.
func ServerIdent(product, version string) string {
	return product + "/" + version
}

// Context returns the request context the response records deferred exits on.
func (r *Response) Context() *models.RequestContext {
	return r.rctx
}

// Sent reports whether the response has already been transmitted.
func (r *Response) Sent() bool {
	return r.transport.HeadersSent()
}

func (r *Response) checkNotSent() error {
	if r.transport.HeadersSent() {
		return ErrState
	}
	return nil
}
