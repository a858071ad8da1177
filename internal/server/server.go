// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-gatekeeper/internal/config"
	"github.com/MKhiriev/go-gatekeeper/internal/handler"
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
)

type server struct {
	httpServer   *httpServer
	statusServer *httpServer
	logger       *logger.Logger
}

// NewServer builds the proxy router, which loads every route, and the
// status server when cfg.StatusAddress is set.
func NewServer(ctx context.Context, handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		router, err := handlers.HTTP.Init(ctx)
		if err != nil {
			return nil, fmt.Errorf("error initializing proxy router: %w", err)
		}
		servers.httpServer = newHTTPServer("proxy", cfg.HTTPAddress, router, cfg, logger)

		if cfg.StatusAddress != "" {
			servers.statusServer = newHTTPServer("status", cfg.StatusAddress, handlers.HTTP.InitStatus(), cfg, logger)
		}
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received or a
// listener fails.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// the proxy first, so that /status stays up while requests drain
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.statusServer != nil {
		s.statusServer.Shutdown()
	}
}

func (s *server) run(ctx context.Context) error {
	running := s.running()
	if len(running) == 0 {
		return errNoServersToRun
	}

	errCh := make(chan error, len(running))
	var wg sync.WaitGroup
	for _, srv := range running {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.RunServer(); err != nil {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("server failed")
	}

	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}

func (s *server) running() []*httpServer {
	var servers []*httpServer
	if s.httpServer != nil {
		servers = append(servers, s.httpServer)
	}
	if s.statusServer != nil {
		servers = append(servers, s.statusServer)
	}
	return servers
}
