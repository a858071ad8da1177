package service

import (
	"context"

	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
)

// AppInfoService reports the identity of the running gateway.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetProductName(ctx context.Context) string
	// ServerHeader returns the Server header value, "<product>/<version>".
	ServerHeader() string
}

// RouteService turns configured routes into request runners.
type RouteService interface {
	// BuildRunners loads and validates every route and builds its plugin
	// chain. It is called once at startup.
	BuildRunners(ctx context.Context) ([]*runloop.Runner, error)

	// ResponseOptions returns the response settings shared by every
	// request, including those that match no route.
	ResponseOptions() response.Options
}
