package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/MKhiriev/go-gatekeeper/models"
)

// Field names accepted by [RouteValidator.Validate].
const (
	FieldID       = "id"
	FieldPaths    = "paths"
	FieldMethods  = "methods"
	FieldUpstream = "upstream"
	FieldPlugins  = "plugins"
)

var defaultRouteFields = []string{FieldID, FieldPaths, FieldMethods, FieldUpstream, FieldPlugins}

// RouteValidator validates [models.Route] and [models.PluginConfig] values.
type RouteValidator struct{}

// NewRouteValidator returns a [RouteValidator] as a [Validator].
func NewRouteValidator() Validator {
	return &RouteValidator{}
}

// Validate checks a route or a plugin configuration. Both value and pointer
// forms are accepted. Without fields, every field of a route is checked.
func (v *RouteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Route:
		return v.validateRoute(value, fields...)
	case *models.Route:
		return v.validateRoute(*value, fields...)
	case models.PluginConfig:
		return validatePlugin(value)
	case *models.PluginConfig:
		return validatePlugin(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RouteValidator) validateRoute(route models.Route, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRouteFields
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldID:
			err = validateRouteID(route.ID)
		case FieldPaths:
			err = validatePaths(route.Paths)
		case FieldMethods:
			err = validateMethods(route.Methods)
		case FieldUpstream:
			err = validateUpstream(route.Upstream)
		case FieldPlugins:
			err = validatePlugins(route.Plugins)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return fmt.Errorf("route %q: %w", route.ID, err)
		}
	}

	return nil
}

func validateRouteID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidRouteID)
	}
	return nil
}

// validatePaths accepts absolute paths without router pattern characters.
func validatePaths(paths []string) error {
	if len(paths) == 0 {
		return ErrEmptyPaths
	}
	for _, p := range paths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: %q must start with /", ErrInvalidPath, p)
		}
		if strings.ContainsAny(p, "{}*? ") {
			return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidPath, p)
		}
	}
	return nil
}

func validateMethods(methods []string) error {
	for _, m := range methods {
		if m == "" || !isToken(m) {
			return fmt.Errorf("%w: %q", ErrInvalidMethod, m)
		}
	}
	return nil
}

func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !httpguts.IsTokenRune(rune(s[i])) {
			return false
		}
	}
	return true
}

// validateUpstream accepts an empty upstream or an absolute http(s) URL.
func validateUpstream(upstream string) error {
	if upstream == "" {
		return nil
	}

	u, err := url.Parse(upstream)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpstream, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q must be an absolute http or https url", ErrInvalidUpstream, upstream)
	}
	return nil
}

func validatePlugins(plugins []models.PluginConfig) error {
	seen := make(map[string]struct{}, len(plugins))
	for _, p := range plugins {
		if err := validatePlugin(p); err != nil {
			return err
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlugin, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

func validatePlugin(p models.PluginConfig) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPluginName
	}
	return nil
}
