// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":         "jwt_secret",
		"APP_ACCESS_TOKEN_DURATION":  "1h",
		"APP_REFRESH_TOKEN_DURATION": "1440h",
		"APP_POLKA_KEY":              "f271c81ff7084ee5b99a5091b42d486e",
		"APP_PLATFORM":               "dev",
		"APP_VERSION":                "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_FILEPATH_ROOT":   "/srv/www",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:chirpy.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.AccessTokenDuration)
	assert.Equal(t, 1440*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, "f271c81ff7084ee5b99a5091b42d486e", cfg.App.PolkaKey)
	assert.Equal(t, "dev", cfg.App.Platform)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/www", cfg.Server.FilepathRoot)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:chirpy.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Zero(t, cfg.App.AccessTokenDuration)
	assert.Empty(t, cfg.App.PolkaKey)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_ACCESS_TOKEN_DURATION": "forever",
	})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "30s", want: 30 * time.Second},
		{value: "5m", want: 5 * time.Minute},
		{value: "1h30m", want: 90 * time.Minute},
		{value: "500ms", want: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": tt.value})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.want, cfg.Server.RequestTimeout)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_POLKA_KEY=from-dotenv\nAPP_PLATFORM=dev\n"), 0o600))

	// real environment wins over the file
	t.Setenv("APP_PLATFORM", "prod")

	require.NoError(t, loadDotEnv(path))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "from-dotenv", cfg.App.PolkaKey)
	assert.Equal(t, "prod", cfg.App.Platform)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotEnv_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_POLKA_KEY='unterminated\n"), 0o600))

	assert.Error(t, loadDotEnv(path))
}

var configEnvKeys = []string{
	"CONFIG",

	"APP_TOKEN_SIGN_KEY",
	"APP_ACCESS_TOKEN_DURATION",
	"APP_REFRESH_TOKEN_DURATION",
	"APP_POLKA_KEY",
	"APP_PLATFORM",
	"APP_VERSION",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_FILEPATH_ROOT",

	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every config variable for the duration of the test.
// t.Setenv registers the restore of the original value.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
