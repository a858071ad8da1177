package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gatekeeper/internal/adapter"
	"github.com/MKhiriev/go-gatekeeper/internal/config"
	"github.com/MKhiriev/go-gatekeeper/internal/handler"
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/observability"
	"github.com/MKhiriev/go-gatekeeper/internal/server"
	"github.com/MKhiriev/go-gatekeeper/internal/service"
	"github.com/MKhiriev/go-gatekeeper/internal/store"
	"github.com/MKhiriev/go-gatekeeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// devVersion is reported when the binary is built without -ldflags.
const devVersion = "0.0.0-dev"

func main() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	version := buildVersion
	if version == "" {
		version = devVersion
	}

	log := logger.NewLogger("gatekeeper")
	cfg, err := config.GetStructuredConfig(version)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	metrics := observability.Default()
	upstream := adapter.NewHTTPUpstreamAdapter(cfg.Adapter, log)

	services, err := service.NewServices(storages, *cfg, upstream, metrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(ctx, handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Err(err).Msg("error running server")
	}
}
