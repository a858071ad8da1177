package runloop

import (
	"net/http"

	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/models"
)

// Phase names, as stored in [models.RequestContext.Phase].
const (
	PhaseRewrite      = "rewrite"
	PhaseAccess       = "access"
	PhaseContent      = "content"
	PhaseHeaderFilter = "header_filter"
)

// PDK is what a plugin handler sees of the request being processed.
type PDK struct {
	// Request is the downstream request. Rewrite and access plugins may
	// modify its headers before it is proxied.
	Request *http.Request

	// Response is the response PDK bound to this request.
	Response *response.Response

	// Ctx is the per-request context shared with the response PDK.
	Ctx *models.RequestContext

	// Log is tagged with the route and the plugin being run.
	Log *logger.Logger

	// MaxHeaders is the enumeration cap plugins pass to
	// [response.Response.Headers].
	MaxHeaders int
}

// Plugin is the base interface of every plugin. A plugin takes part in the
// phases whose handler interface it implements.
type Plugin interface {
	Name() string
}

// Rewriter handles the rewrite phase. Exits are sent immediately.
type Rewriter interface {
	Plugin
	Rewrite(pdk *PDK) (response.Result, error)
}

// Accessor handles the access phase. Exits are deferred until every access
// plugin has run.
type Accessor interface {
	Plugin
	Access(pdk *PDK) (response.Result, error)
}

// HeaderFilterer handles the header_filter phase, after the upstream
// response headers have been applied and before the body is sent.
type HeaderFilterer interface {
	Plugin
	HeaderFilter(pdk *PDK) (response.Result, error)
}

type phaseHandler func(pdk *PDK) (response.Result, error)

// handlerFor returns the handler p registers for phase, or nil.
func handlerFor(p Plugin, phase string) phaseHandler {
	switch phase {
	case PhaseRewrite:
		if h, ok := p.(Rewriter); ok {
			return h.Rewrite
		}
	case PhaseAccess:
		if h, ok := p.(Accessor); ok {
			return h.Access
		}
	case PhaseHeaderFilter:
		if h, ok := p.(HeaderFilterer); ok {
			return h.HeaderFilter
		}
	}
	return nil
}
