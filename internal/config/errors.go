package config

import "errors"

// Validation errors returned when the merged configuration cannot start the
// gateway.
var (
	// ErrInvalidAppConfigs indicates invalid product or PDK settings
	// (for example, missing version or max headers out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates that no route source, or more than
	// one, was configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid upstream client settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
