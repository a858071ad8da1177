package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRouteID  = errors.New("invalid route id")
	ErrEmptyPaths      = errors.New("route must have at least one path")
	ErrInvalidPath     = errors.New("invalid route path")
	ErrInvalidMethod   = errors.New("invalid http method")
	ErrInvalidUpstream = errors.New("invalid upstream url")
	ErrEmptyPluginName = errors.New("plugin name is required")
	ErrDuplicatePlugin = errors.New("plugin configured more than once")
)
