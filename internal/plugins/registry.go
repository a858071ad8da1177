package plugins

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-gatekeeper/internal/runloop"
	jsoniter "github.com/json-iterator/go"
)

// ErrUnknownPlugin is returned by [New] for names that are not registered.
var ErrUnknownPlugin = errors.New("unknown plugin")

// ErrInvalidConfig wraps plugin configuration errors.
var ErrInvalidConfig = errors.New("invalid plugin configuration")

type factory func(config map[string]any) (runloop.Plugin, error)

var registry = map[string]factory{
	CorrelationIDName:       newCorrelationID,
	RequestTerminationName:  newRequestTermination,
	JWTName:                 newJWT,
	ResponseTransformerName: newResponseTransformer,
}

// New instantiates the plugin registered under name with config.
func New(name string, config map[string]any) (runloop.Plugin, error) {
	create, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
	}

	p, err := create(config)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", name, err)
	}

	return p, nil
}

// Names returns the registered plugin names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// decodeConfig maps a raw configuration object onto the typed config of a
// plugin, honouring its json tags.
func decodeConfig(raw map[string]any, dst any) error {
	api := jsoniter.ConfigCompatibleWithStandardLibrary

	data, err := api.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := api.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
