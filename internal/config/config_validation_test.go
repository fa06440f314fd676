package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_validate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.App.TokenSignKey = "sign-key"
		cfg.App.PolkaKey = "polka-key"
		cfg.Storage.DB.DSN = "postgres://localhost/chirpy"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing polka key", mutate: func(cfg *StructuredConfig) { cfg.App.PolkaKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero access lifetime", mutate: func(cfg *StructuredConfig) { cfg.App.AccessTokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative refresh lifetime", mutate: func(cfg *StructuredConfig) { cfg.App.RefreshTokenDuration = -time.Hour }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty DSN", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero request timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
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
