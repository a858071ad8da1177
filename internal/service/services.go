package service

import (
	"fmt"

	"github.com/MKhiriev/go-gatekeeper/internal/config"
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
	"github.com/MKhiriev/go-gatekeeper/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	RouteService   RouteService
}

// NewServices wires the services. upstream proxies routes with an upstream
// URL; recorder receives response events and may be nil.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, upstream runloop.Upstream, recorder response.Recorder, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	opts := runloop.Options{
		Response: response.Options{
			ServerHeader: appInfo.ServerHeader(),
			Recorder:     recorder,
		},
		MaxHeaders: cfg.App.MaxHeaders,
		Upstream:   upstream,
	}

	return &Services{
		AppInfoService: appInfo,
		RouteService:   NewRouteService(storages.RouteRepository, opts, logger),
	}, nil
}
