// Package config loads the service configuration from a YAML file with
// environment-variable overrides for credentials.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultsConfig carries the market parameters assumed when a caller omits
// them (rates and yields rarely change per request).
type DefaultsConfig struct {
	Rate  float64 `yaml:"rate"`
	Yield float64 `yaml:"yield"`
}

// QuoteConfig selects the market data provider used to resolve spot and
// historical volatility for a symbol.
type QuoteConfig struct {
	Provider string `yaml:"provider"` // "polygon" or "synthetic"
	APIKey   string `yaml:"api_key"`
	Seed     int64  `yaml:"seed"`
}

type Config struct {
	Listen   string         `yaml:"listen"`
	LogLevel string         `yaml:"log_level"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Quote    QuoteConfig    `yaml:"quote"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		LogLevel: "info",
		Defaults: DefaultsConfig{Rate: 0.05, Yield: 0},
		Quote:    QuoteConfig{Provider: "synthetic", Seed: 1},
	}
}

// Load reads path into a Config on top of the defaults. POLYGON_API_KEY in
// the environment overrides the file's quote.api_key.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config")
		}
	}
	if key := os.Getenv("POLYGON_API_KEY"); key != "" {
		cfg.Quote.APIKey = key
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}
