// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package runloop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/transport"
	"github.com/MKhiriev/go-gatekeeper/models"
)

// Messages of the responses generated by the runloop itself.
const (
	MessageBadUpstream = "An invalid response was received from the upstream server"
	MessageNoRoute     = "no Route matched with those values"
)

// Upstream forwards a downstream request to a route's upstream.
type Upstream interface {
	Forward(ctx context.Context, req *http.Request, upstreamURL string) (*models.UpstreamResponse, error)
}

// Options carries what every request of a runner shares.
type Options struct {
	// Response configures the response PDK of each request.
	Response response.Options

	// MaxHeaders is handed to plugins via [PDK.MaxHeaders].
	MaxHeaders int

	// Upstream proxies routes that name an upstream URL. Routes without an
	// upstream are answered with an echo payload.
	Upstream Upstream
}

// Runner processes the requests of one route.
type Runner struct {
	route   models.Route
	plugins []Plugin
	opts    Options
	logger  *logger.Logger
}

// NewRunner returns a [Runner] executing plugins, in order, for every
// request matched to route.
func NewRunner(route models.Route, plugins []Plugin, opts Options, log *logger.Logger) *Runner {
	if opts.MaxHeaders == 0 {
		opts.MaxHeaders = response.DefaultMaxHeaders
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Runner{
		route:   route,
		plugins: plugins,
		opts:    opts,
		logger:  log,
	}
}

// Route returns the route the runner serves.
func (rn *Runner) Route() models.Route {
	return rn.route
}

// Plugins returns the names of the plugins of the chain, in order.
func (rn *Runner) Plugins() []string {
	names := make([]string, 0, len(rn.plugins))
	for _, p := range rn.plugins {
		names = append(names, p.Name())
	}
	return names
}

// ServeHTTP implements [http.Handler].
func (rn *Runner) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pdk := rn.newPDK(w, r)

	if rn.runPhase(pdk, PhaseRewrite, false) {
		return
	}
	if rn.runPhase(pdk, PhaseAccess, true) {
		return
	}

	rn.content(pdk)
}

func (rn *Runner) newPDK(w http.ResponseWriter, r *http.Request) *PDK {
	log := logger.FromRequest(r).WithRoute(rn.route.ID)
	rctx := models.NewRequestContext(rn.route.ID)

	return &PDK{
		Request:    r,
		Response:   response.New(transport.NewHTTPTransport(w), rctx, rn.opts.Response, log),
		Ctx:        rctx,
		Log:        log,
		MaxHeaders: rn.opts.MaxHeaders,
	}
}

// runPhase runs the handlers of phase and reports whether the request is
// finished.
//
// A suspended plugin is abandoned and the next one runs. Once the phase
// completes, delay mode is switched off and the first stored continuation
// is resumed, which sends the deferred response.
func (rn *Runner) runPhase(pdk *PDK, phase string, delay bool) bool {
	pdk.Ctx.Phase = phase
	pdk.Ctx.DelayMode = delay
	requestLog := pdk.Log

	var pending response.Continuation
	for _, p := range rn.plugins {
		handler := handlerFor(p, phase)
		if handler == nil {
			continue
		}

		pdk.Log = &logger.Logger{Logger: requestLog.With().Str("plugin", p.Name()).Logger()}
		res, err := handler(pdk)
		if err != nil {
			res, err = rn.pluginFailed(pdk, p, err)
			if err != nil {
				pdk.Log.Err(err).Str("phase", phase).Msg("error sending plugin failure response")
			}
		}

		if res.Terminated() || pdk.Response.Sent() {
			pdk.Log = requestLog
			return true
		}
		if res.Suspended() && pending == nil {
			pending = res.Resume
		}
	}
	pdk.Log = requestLog
	pdk.Ctx.DelayMode = false

	if pending == nil {
		return false
	}

	if _, err := pending(); err != nil {
		pdk.Log.Err(err).Str("phase", phase).Msg("error flushing delayed response")
	}
	return true
}

// pluginFailed answers a plugin error with a 500. The error text is logged
// by the send pipeline and never reaches the client.
func (rn *Runner) pluginFailed(pdk *PDK, p Plugin, pluginErr error) (response.Result, error) {
	pdk.Log.Err(pluginErr).Str("phase", pdk.Ctx.Phase).Msg("plugin failed")

	if pdk.Response.Sent() {
		return response.Result{Action: response.ActionTerminate}, nil
	}

	return pdk.Response.Exit(http.StatusInternalServerError, fmt.Errorf("plugin %s: %w", p.Name(), pluginErr), nil)
}

// content produces the response of a request that no plugin terminated:
// the upstream response when the route has an upstream, an echo payload
// otherwise. Upstream headers go through the header store and the
// header_filter phase runs before the body is sent.
func (rn *Runner) content(pdk *PDK) {
	pdk.Ctx.Phase = PhaseContent

	status, body, header, ok := rn.fetch(pdk)
	if !ok {
		return
	}

	if err := pdk.Response.SetStatus(status); err != nil {
		pdk.Log.Err(err).Int("status", status).Msg("invalid upstream status")
		rn.badUpstream(pdk)
		return
	}
	rn.applyUpstreamHeaders(pdk, header)

	if rn.runPhase(pdk, PhaseHeaderFilter, false) {
		return
	}

	if _, err := pdk.Response.Exit(pdk.Response.Status(), body, nil); err != nil {
		pdk.Log.Err(err).Msg("error sending response")
	}
}

func (rn *Runner) fetch(pdk *PDK) (int, any, http.Header, bool) {
	r := pdk.Request

	if rn.route.Upstream == "" || rn.opts.Upstream == nil {
		return http.StatusOK, map[string]string{
			"route":  rn.route.Name,
			"method": r.Method,
			"path":   r.URL.Path,
		}, nil, true
	}

	upstreamResp, err := rn.opts.Upstream.Forward(r.Context(), r, rn.route.Upstream)
	if err != nil {
		pdk.Log.Err(err).Str("upstream", rn.route.Upstream).Msg("upstream request failed")
		rn.badUpstream(pdk)
		return 0, nil, nil, false
	}

	return upstreamResp.Status, upstreamResp.Body, upstreamResp.Header, true
}

func (rn *Runner) badUpstream(pdk *PDK) {
	if _, err := pdk.Response.Exit(http.StatusBadGateway, MessageBadUpstream, nil); err != nil && !errors.Is(err, response.ErrState) {
		pdk.Log.Err(err).Msg("error sending bad gateway response")
	}
}

// applyUpstreamHeaders copies upstream headers one value at a time so that
// a single invalid header does not drop the others.
func (rn *Runner) applyUpstreamHeaders(pdk *PDK, header http.Header) {
	for name, values := range header {
		if strings.EqualFold(name, "Server") {
			continue
		}
		for _, value := range values {
			if err := pdk.Response.AddHeader(name, value); err != nil {
				pdk.Log.Warn().Err(err).Str("header", name).Msg("dropping upstream header")
			}
		}
	}
}

// NotFound answers a request that matched no route.
func NotFound(opts response.Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		resp := response.New(transport.NewHTTPTransport(w), nil, opts, log)

		if _, err := resp.Exit(http.StatusNotFound, MessageNoRoute, nil); err != nil {
			log.Err(err).Msg("error sending not found response")
		}
	})
}

// MethodNotAllowed answers a request whose method the matched route does not
// accept.
func MethodNotAllowed(opts response.Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		resp := response.New(transport.NewHTTPTransport(w), nil, opts, log)

		if _, err := resp.Exit(http.StatusMethodNotAllowed, nil, nil); err != nil {
			log.Err(err).Msg("error sending method not allowed response")
		}
	})
}
