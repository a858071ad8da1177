package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid declarative",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "valid db mode",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage = Storage{DB: DB{DSN: "file:gatekeeper.db"}}
			},
		},
		{
			name:    "missing version",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Version = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing product name",
			mutate:  func(cfg *StructuredConfig) { cfg.App.ProductName = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "max headers zero",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MaxHeaders = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "max headers above limit",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MaxHeaders = 1001 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "chatty" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "status address equals http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.StatusAddress = cfg.Server.HTTPAddress },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "no route source",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage = Storage{} },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "both route sources",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.DSN = "postgres://localhost/gatekeeper"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative upstream timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
