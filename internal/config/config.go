// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dynamo-capacity/internal/errors"
	"dynamo-capacity/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Pricing contains rate-card overrides
	Pricing PricingConfig `json:"pricing"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown, csv)
	DefaultFormat string `json:"default_format"`

	// ShowStorage includes the per-table storage section
	ShowStorage bool `json:"show_storage"`

	// ShowPricing includes the monthly cost section
	ShowPricing bool `json:"show_pricing"`
}

// PricingConfig overrides the built-in provisioned-capacity rate card.
// Rates are decimal strings; empty means use the built-in rate.
type PricingConfig struct {
	// RCUHourlyUSD is the price of one provisioned RCU for one hour
	RCUHourlyUSD string `json:"rcu_hourly_usd,omitempty"`

	// WCUHourlyUSD is the price of one provisioned WCU for one hour
	WCUHourlyUSD string `json:"wcu_hourly_usd,omitempty"`

	// StorageGBMonthUSD is the price of one GB stored for one month
	StorageGBMonthUSD string `json:"storage_gb_month_usd,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowStorage:   true,
			ShowPricing:   false,
		},
		Logging: logging.DefaultConfig(),
	}
}

var current = Default()

// Get returns the active configuration
func Get() *Config {
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	current = cfg
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".dynamo-capacity.json"
	}
	return filepath.Join(homeDir, ".dynamo-capacity.json")
}

// Load reads configuration from a file. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to read config file", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to parse config file", err)
	}
	return cfg, nil
}

// Save writes configuration to a file
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeInternal, "failed to encode config", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.TypeConfig, "failed to write config file", err)
	}
	return nil
}
