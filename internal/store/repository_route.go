package store

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/models"
)

const (
	maxQueryAttempts = 3
	retryBackoff     = 200 * time.Millisecond
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// routeRepository is the SQL implementation of [RouteRepository]. It reads
// the "routes" and "plugins" tables created by the embedded migrations.
type routeRepository struct {
	db      *DB
	logger  *logger.Logger
	backoff time.Duration
}

// NewRouteRepository constructs a [RouteRepository] backed by db.
func NewRouteRepository(db *DB, logger *logger.Logger) RouteRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating route repository")
	return &routeRepository{
		db:      db,
		logger:  logger,
		backoff: retryBackoff,
	}
}

// ListRoutes loads all routes and attaches their plugins. Transient
// database errors are retried a few times before giving up.
func (r *routeRepository) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var (
		routes []models.Route
		err    error
	)

	for attempt := 1; attempt <= maxQueryAttempts; attempt++ {
		routes, err = r.listRoutes(ctx)
		if err == nil {
			return routes, nil
		}

		class := r.db.classify(err)
		r.logger.Warn().Err(err).
			Str("func", "*routeRepository.ListRoutes").
			Int("attempt", attempt).
			Stringer("classification", class).
			Msg("failed to load routes")
		if class != Retryable || attempt == maxQueryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff * time.Duration(attempt)):
		}
	}

	return nil, err
}

func (r *routeRepository) listRoutes(ctx context.Context) ([]models.Route, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRoutesQuery(r.db.builder())
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*routeRepository.listRoutes").Msg("failed to query routes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		routes []models.Route
		ids    []string
	)
	for rows.Next() {
		var (
			route          models.Route
			paths, methods string
		)
		if err := rows.Scan(&route.ID, &route.Name, &paths, &methods, &route.Upstream, &route.CreatedAt); err != nil {
			log.Err(err).Str("func", "*routeRepository.listRoutes").Msg("failed to scan route row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if route.Paths, err = decodeStrings(paths); err != nil {
			return nil, fmt.Errorf("route %q paths: %w", route.ID, err)
		}
		if route.Methods, err = decodeStrings(methods); err != nil {
			return nil, fmt.Errorf("route %q methods: %w", route.ID, err)
		}

		routes = append(routes, route)
		ids = append(ids, route.ID)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*routeRepository.listRoutes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	plugins, err := r.listPlugins(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range routes {
		routes[i].Plugins = plugins[routes[i].ID]
	}

	return routes, nil
}

// listPlugins returns the plugins of routeIDs grouped by route id.
func (r *routeRepository) listPlugins(ctx context.Context, routeIDs []string) (map[string][]models.PluginConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPluginsQuery(r.db.builder(), routeIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*routeRepository.listPlugins").Msg("failed to query plugins")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plugins := make(map[string][]models.PluginConfig, len(routeIDs))
	for rows.Next() {
		var (
			routeID, config string
			enabled         bool
			plugin          models.PluginConfig
		)
		if err := rows.Scan(&routeID, &plugin.Name, &enabled, &config); err != nil {
			log.Err(err).Str("func", "*routeRepository.listPlugins").Msg("failed to scan plugin row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		plugin.Enabled = &enabled
		if config != "" {
			if err := json.Unmarshal([]byte(config), &plugin.Config); err != nil {
				return nil, fmt.Errorf("%w: plugin %q of route %q: %w", ErrDecodingColumn, plugin.Name, routeID, err)
			}
		}

		plugins[routeID] = append(plugins[routeID], plugin)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*routeRepository.listPlugins").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return plugins, nil
}

// decodeStrings decodes a JSON array of strings stored in a text column.
// An empty column decodes to nil.
func decodeStrings(column string) ([]string, error) {
	if column == "" {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal([]byte(column), &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}

	return values, nil
}
