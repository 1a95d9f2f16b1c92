// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault/pkg/fault"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
database_url: postgres://localhost:5432/taskvault
auth:
  secret: sekrit
  token_ttl: 1h
http:
  addr: ":9999"
log_format: text
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/taskvault", cfg.DatabaseURL)
	assert.Equal(t, "sekrit", cfg.Auth.Secret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
	assert.Equal(t, "text", cfg.LogFormat)
	// Defaults survive for keys the file doesn't set.
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, `
database_url: postgres://localhost:5432/taskvault
auth:
  secret: sekrit
http:
  addr: ":9999"
`)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--http.addr", ":7777"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.HTTP.Addr, "changed flag wins over file")
	assert.Equal(t, "sekrit", cfg.Auth.Secret, "unchanged flag keeps file value")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml", nil)
	require.Error(t, err)
	fault.AssertErrorCode(t, err, "CONFIG_FILE_FAILED")
}

func TestConfig_Validate(t *testing.T) {
	valid := Default()
	valid.DatabaseURL = "postgres://localhost:5432/taskvault"
	valid.Auth.Secret = "sekrit"

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:   "missing database url",
			mutate: func(c *Config) { c.DatabaseURL = "" },
			want:   "database_url",
		},
		{
			name:   "missing secret",
			mutate: func(c *Config) { c.Auth.Secret = "" },
			want:   "auth.secret",
		},
		{
			name:   "zero token ttl",
			mutate: func(c *Config) { c.Auth.TokenTTL = 0 },
			want:   "token_ttl",
		},
		{
			name:   "negative token ttl",
			mutate: func(c *Config) { c.Auth.TokenTTL = -time.Minute },
			want:   "token_ttl",
		},
		{
			name:   "empty http addr",
			mutate: func(c *Config) { c.HTTP.Addr = "" },
			want:   "http.addr",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.LogFormat = "xml" },
			want:   "log_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fault.AssertErrorCode(t, err, "CONFIG_INVALID")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
