// Package config loads runtime settings from the environment.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const DefaultDatabaseURL = "sqlite:///tmp/holocron.db"

type Config struct {
	Port            string  `koanf:"port" validate:"required,numeric"`
	Env             string  `koanf:"env" validate:"required"`
	DatabaseURL     string  `koanf:"database_url" validate:"required"`
	LogLevel        string  `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	RateLimitRPS    float64 `koanf:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst  int     `koanf:"rate_limit_burst" validate:"gt=0"`
	ShutdownTimeout int     `koanf:"shutdown_timeout" validate:"gt=0"`
	AutoMigrate     bool    `koanf:"auto_migrate"`
}

// Default returns the configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		Port:            "3000",
		Env:             "development",
		DatabaseURL:     DefaultDatabaseURL,
		LogLevel:        "info",
		RateLimitRPS:    5,
		RateLimitBurst:  10,
		ShutdownTimeout: 10,
		AutoMigrate:     true,
	}
}

// Load reads the process environment on top of Default and validates the result.
func Load() (Config, error) {
	k := koanf.New(".")
	// Empty variables are skipped so they do not clobber defaults.
	provider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(provider, nil); err != nil {
		return Config{}, errors.Wrap(err, "loading environment")
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	// Heroku-style URLs use the postgres:// scheme.
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") {
		cfg.DatabaseURL = "postgresql://" + strings.TrimPrefix(cfg.DatabaseURL, "postgres://")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// ShutdownGrace is the time allowed for in-flight requests on shutdown.
func (c Config) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
