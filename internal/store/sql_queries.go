// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	routesTable  = "routes"
	pluginsTable = "plugins"
)

var (
	routeColumns  = []string{"id", "name", "paths", "methods", "upstream", "created_at"}
	pluginColumns = []string{"route_id", "name", "enabled", "config"}
)

// buildListRoutesQuery selects every route ordered by name.
func buildListRoutesQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(routeColumns...).
		From(routesTable).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListPluginsQuery selects the plugins of routeIDs in configuration
// order. An empty routeIDs selects nothing.
func buildListPluginsQuery(b sq.StatementBuilderType, routeIDs []string) (string, []any, error) {
	query, args, err := b.
		Select(pluginColumns...).
		From(pluginsTable).
		Where(sq.Eq{"route_id": routeIDs}).
		OrderBy("route_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
