// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package config loads service configuration from defaults, an optional
// YAML file, and command-line flags, in increasing precedence.
package config

import (
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds the full service configuration.
type Config struct {
	DatabaseURL string     `koanf:"database_url"`
	Auth        AuthConfig `koanf:"auth"`
	HTTP        HTTPConfig `koanf:"http"`
	MetricsAddr string     `koanf:"metrics_addr"`
	LogFormat   string     `koanf:"log_format"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	Secret   string        `koanf:"secret"`
	TokenTTL time.Duration `koanf:"token_ttl"`
}

// HTTPConfig holds the API listener settings.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// Default returns the configuration defaults. Secrets have no default
// and must come from the file or flags.
func Default() Config {
	return Config{
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		MetricsAddr: ":9090",
		LogFormat:   "json",
	}
}

// Load builds the configuration from defaults, then the YAML file at
// path (skipped when path is empty), then the given flag set. Later
// sources win.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_FILE_FAILED").With("path", path).Wrap(err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_PARSE_FAILED").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and sane.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database_url is required")
	}
	if c.Auth.Secret == "" {
		return oops.Code("CONFIG_INVALID").Errorf("auth.secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return oops.Code("CONFIG_INVALID").Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.HTTP.Addr == "" {
		return oops.Code("CONFIG_INVALID").Errorf("http.addr is required")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return oops.Code("CONFIG_INVALID").Errorf("log_format must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// RegisterFlags declares the flags Load understands on the given flag
// set. Flag names use dots matching the koanf key paths.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("database_url", "", "PostgreSQL connection string")
	flags.String("auth.secret", "", "token signing secret")
	flags.Duration("auth.token_ttl", 24*time.Hour, "issued token lifetime")
	flags.String("http.addr", ":8080", "API listen address")
	flags.String("metrics_addr", ":9090", "metrics listen address")
	flags.String("log_format", "json", "log output format (json or text)")
}
