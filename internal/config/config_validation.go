// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// maxHeadersLimit mirrors the upper bound enforced by the response PDK.
const maxHeadersLimit = 1000

// validate checks that the final merged [StructuredConfig] can start the
// gateway.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ProductName == "" || cfg.App.Version == "" {
		return fmt.Errorf("%w: product name and version are required", ErrInvalidAppConfigs)
	}
	if cfg.App.MaxHeaders < 1 || cfg.App.MaxHeaders > maxHeadersLimit {
		return fmt.Errorf("%w: max headers must be between 1 and %d, got %d", ErrInvalidAppConfigs, maxHeadersLimit, cfg.App.MaxHeaders)
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.StatusAddress != "" && cfg.Server.StatusAddress == cfg.Server.HTTPAddress {
		return fmt.Errorf("%w: status address must differ from http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	switch {
	case cfg.Storage.DB.DSN == "" && cfg.Storage.Declarative.Path == "":
		return fmt.Errorf("%w: either a database DSN or a declarative config path is required", ErrInvalidStorageConfigs)
	case cfg.Storage.DB.DSN != "" && cfg.Storage.Declarative.Path != "":
		return fmt.Errorf("%w: database DSN and declarative config path are mutually exclusive", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative upstream request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}
