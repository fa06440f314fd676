// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress          = "localhost:8080"
	defaultRequestTimeout       = 30 * time.Second
	defaultFilepathRoot         = "."
	defaultAccessTokenDuration  = time.Hour
	defaultRefreshTokenDuration = 60 * 24 * time.Hour
	defaultDotEnvPath           = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessTokenDuration:  defaultAccessTokenDuration,
			RefreshTokenDuration: defaultRefreshTokenDuration,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			FilepathRoot:   defaultFilepathRoot,
		},
	}
}
