package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/models"
)

// supportedFormatVersions lists the accepted _format_version values. An
// absent version is accepted as well.
var supportedFormatVersions = []string{"1.0", "1.1"}

// declarativeConfig is the layout of the DB-less routes file:
//
//	_format_version: "1.0"
//	routes:
//	  - id: orders
//	    paths: ["/orders"]
//	    upstream: http://orders.internal:8080
//	    plugins:
//	      - name: jwt
//	        config: {secret: s3cr3t}
type declarativeConfig struct {
	FormatVersion string         `yaml:"_format_version"`
	Routes        []models.Route `yaml:"routes"`
}

// declarativeRouteRepository implements [RouteRepository] on top of a YAML
// file. The file is read on every ListRoutes call.
type declarativeRouteRepository struct {
	path   string
	logger *logger.Logger
}

// NewDeclarativeRouteRepository returns a [RouteRepository] reading routes
// from the YAML file at path.
func NewDeclarativeRouteRepository(path string, logger *logger.Logger) RouteRepository {
	logger.Debug().Str("path", path).Msg("creating declarative route repository")
	return &declarativeRouteRepository{path: path, logger: logger}
}

// ListRoutes implements [RouteRepository].
func (d *declarativeRouteRepository) ListRoutes(ctx context.Context) ([]models.Route, error) {
	f, err := os.Open(d.path)
	if err != nil {
		d.logger.Err(err).Str("func", "*declarativeRouteRepository.ListRoutes").Msg("failed to open declarative config")
		return nil, fmt.Errorf("%w: %w", ErrReadingDeclarativeConfig, err)
	}
	defer f.Close()

	routes, err := decodeDeclarative(f)
	if err != nil {
		d.logger.Err(err).Str("func", "*declarativeRouteRepository.ListRoutes").Str("path", d.path).Msg("failed to load routes")
		return nil, err
	}

	return routes, nil
}

func decodeDeclarative(r io.Reader) ([]models.Route, error) {
	var cfg declarativeConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoutes
		}
		return nil, fmt.Errorf("%w: %w", ErrParsingDeclarativeConfig, err)
	}

	if cfg.FormatVersion != "" && !slices.Contains(supportedFormatVersions, cfg.FormatVersion) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormatVersion, cfg.FormatVersion)
	}
	if len(cfg.Routes) == 0 {
		return nil, ErrNoRoutes
	}

	return cfg.Routes, nil
}
