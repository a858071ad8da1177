// Package plugins implements the bundled gatekeeper plugins and the registry
// that instantiates them from route configuration.
package plugins
