// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/plugins"
	"github.com/MKhiriev/go-gatekeeper/internal/response"
	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
	"github.com/MKhiriev/go-gatekeeper/internal/store"
	"github.com/MKhiriev/go-gatekeeper/internal/validators"
	"github.com/MKhiriev/go-gatekeeper/models"
)

type routeService struct {
	repository store.RouteRepository
	validator  validators.Validator
	opts       runloop.Options

	logger *logger.Logger
}

func NewRouteService(repository store.RouteRepository, opts runloop.Options, logger *logger.Logger) RouteService {
	return &routeService{
		repository: repository,
		validator:  validators.NewRouteValidator(),
		opts:       opts,
		logger:     logger,
	}
}

func (s *routeService) ResponseOptions() response.Options {
	return s.opts.Response
}

// BuildRunners loads the routes and returns one runner per route, in the
// order the source lists them. Disabled plugins are skipped.
func (s *routeService) BuildRunners(ctx context.Context) ([]*runloop.Runner, error) {
	routes, err := s.repository.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading routes: %w", err)
	}

	owners := make(map[string]string)
	runners := make([]*runloop.Runner, 0, len(routes))
	for _, route := range routes {
		route = normalizeRoute(route)
		if err := s.validator.Validate(ctx, route); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRoute, err)
		}
		for _, path := range route.Paths {
			if owner, ok := owners[path]; ok {
				return nil, fmt.Errorf("%w: %s (routes %q and %q)", ErrDuplicatePath, path, owner, route.ID)
			}
			owners[path] = route.ID
		}

		chain, err := buildChain(route)
		if err != nil {
			return nil, err
		}

		runner := runloop.NewRunner(route, chain, s.opts, s.logger.WithRoute(route.ID))
		s.logger.Info().
			Str("route_id", route.ID).
			Strs("paths", route.Paths).
			Strs("plugins", runner.Plugins()).
			Msg("route loaded")
		runners = append(runners, runner)
	}

	return runners, nil
}

// normalizeRoute fills the id from the name and upper-cases methods.
func normalizeRoute(route models.Route) models.Route {
	if route.ID == "" {
		route.ID = route.Name
	}
	if route.Name == "" {
		route.Name = route.ID
	}
	if len(route.Methods) > 0 {
		methods := make([]string, len(route.Methods))
		for i, m := range route.Methods {
			methods[i] = strings.ToUpper(m)
		}
		route.Methods = methods
	}
	return route
}

func buildChain(route models.Route) ([]runloop.Plugin, error) {
	chain := make([]runloop.Plugin, 0, len(route.Plugins))
	for _, cfg := range route.Plugins {
		if !cfg.IsEnabled() {
			continue
		}
		p, err := plugins.New(cfg.Name, cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("%w: route %q: %w", ErrBuildingChain, route.ID, err)
		}
		chain = append(chain, p)
	}
	return chain, nil
}
