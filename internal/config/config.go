// Package config loads runtime configuration for a solcal session.
package config

import (
	"github.com/spf13/viper"

	"github.com/solarpath/solcal/internal/body"
)

// Config holds runtime configuration. Values come from .solcal.yaml,
// SOLCAL_* env vars, and CLI flags, in ascending precedence.
type Config struct {
	LogLevel    string  `mapstructure:"log_level"`
	DefaultBody string  `mapstructure:"default_body"`
	CatalogPath string  `mapstructure:"catalog_path"`
	TickSeconds float64 `mapstructure:"tick_seconds"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("default_body", "mars")
	viper.SetDefault("catalog_path", body.DefaultCatalogPath)
	viper.SetDefault("tick_seconds", 1.0)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
