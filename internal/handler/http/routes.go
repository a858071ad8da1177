// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
)

// Init builds the route runners and returns the proxy router. Every route
// path p is served for p itself and for everything below it.
func (h *Handler) Init(ctx context.Context) (*chi.Mux, error) {
	runners, err := h.services.RouteService.BuildRunners(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building routes: %w", err)
	}
	h.runners = runners

	opts := h.services.RouteService.ResponseOptions()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	for _, runner := range runners {
		handler := withAllowedMethods(runner.Route().Methods, opts)(runner)
		for _, path := range runner.Route().Paths {
			for _, pattern := range mountPatterns(path) {
				router.Handle(pattern, handler)
			}
		}
	}

	router.NotFound(runloop.NotFound(opts).ServeHTTP)
	router.MethodNotAllowed(runloop.MethodNotAllowed(opts).ServeHTTP)

	return router, nil
}

// InitStatus returns the status router. It reports the routes built by
// Init, so it must be called after Init.
func (h *Handler) InitStatus() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	router.With(withGZip).Get("/status", h.getStatus)
	router.Get("/status/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	return router
}

// mountPatterns returns the chi patterns serving path and its subtree.
func mountPatterns(path string) []string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return []string{"/", "/*"}
	}
	return []string{trimmed, trimmed + "/*"}
}
