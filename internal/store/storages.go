package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gatekeeper/internal/config"
	"github.com/MKhiriev/go-gatekeeper/internal/logger"
)

// Storages groups the route sources handed to the service layer.
type Storages struct {
	RouteRepository RouteRepository

	// db is nil in DB-less mode.
	db *DB
}

// NewStorages opens the route source selected by cfg. In DB mode the
// database is connected and migrated; otherwise routes are read from the
// declarative file.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if !cfg.DBMode() {
		log.Info().Str("path", cfg.Declarative.Path).Msg("running in DB-less mode")
		return &Storages{
			RouteRepository: NewDeclarativeRouteRepository(cfg.Declarative.Path, log),
		}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("dialect", db.Dialect()).Msg("running in DB mode")

	return &Storages{
		RouteRepository: NewRouteRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
