package models

import "time"

// Route describes how the gateway handles requests whose path matches one of
// its Paths. Routes are loaded at startup either from the database (DB mode)
// or from a declarative YAML file (DB-less mode).
type Route struct {
	// ID is the unique route identifier.
	ID string `json:"id" yaml:"id"`

	// Name is a human-readable route name used in logs and /status output.
	Name string `json:"name" yaml:"name"`

	// Paths lists the path prefixes served by this route (e.g. "/orders").
	Paths []string `json:"paths" yaml:"paths"`

	// Methods restricts the HTTP methods accepted by this route.
	// An empty list accepts every method.
	Methods []string `json:"methods,omitempty" yaml:"methods,omitempty"`

	// Upstream is the base URL requests are proxied to. When empty the
	// gateway answers with an echo payload describing the matched route.
	Upstream string `json:"upstream,omitempty" yaml:"upstream,omitempty"`

	// Plugins lists the plugins applied to requests on this route, in the
	// order they were configured.
	Plugins []PluginConfig `json:"plugins,omitempty" yaml:"plugins,omitempty"`

	// CreatedAt is set for routes loaded from the database.
	CreatedAt time.Time `json:"created_at,omitzero" yaml:"-"`
}

// PluginConfig names a plugin and carries its raw configuration.
type PluginConfig struct {
	// Name is the registered plugin name (e.g. "jwt", "request-termination").
	Name string `json:"name" yaml:"name"`

	// Enabled toggles the plugin without removing its configuration.
	// A nil value means enabled.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Config is the plugin-specific configuration object.
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// IsEnabled reports whether the plugin should be instantiated.
func (p PluginConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}
