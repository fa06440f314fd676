// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// [ErrInvalidAppConfigs], [ErrInvalidStorageConfigs] or
// [ErrInvalidServerConfigs].
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	case cfg.App.PolkaKey == "":
		return fmt.Errorf("%w: polka key is empty", ErrInvalidAppConfigs)
	case cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0:
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}
