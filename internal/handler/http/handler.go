package http

import (
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/observability"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
	"github.com/MKhiriev/go-gatekeeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *observability.Metrics

	// runners is populated by Init.
	runners []*runloop.Runner

	logger *logger.Logger
}

// NewHandler returns a Handler. metrics may be nil, in which case no
// request metrics are recorded and /metrics is not served.
func NewHandler(services *service.Services, metrics *observability.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
