// Package config defines the configuration for the venustags collector and
// the fixed table of supported subgraph endpoints.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by VENUSTAGS_* environment
// variables.
type Config struct {
	Subgraph SubgraphConfig `toml:"subgraph"`
	Output   OutputConfig   `toml:"output"`
	LogLevel string         `toml:"log_level"`
}

// SubgraphConfig holds indexing-service access parameters.
type SubgraphConfig struct {
	// APIKey is the gateway key substituted into the endpoint URL.
	APIKey string `toml:"api_key"`
	// ChainID selects which chain's markets to collect, e.g. "56".
	ChainID     string   `toml:"chain_id"`
	HTTPTimeout duration `toml:"http_timeout"`
}

// OutputConfig controls where the collected tags are written.
type OutputConfig struct {
	// Path of the JSON file to write. Empty means stdout.
	Path string `toml:"path"`
}

// duration is a wrapper around time.Duration that supports TOML string
// decoding (e.g. "30s", "2m").
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder can
// parse duration strings like "30s".
func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler for round-trip encoding.
func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns a Config populated with reasonable default values.
// These match the values in config.example.toml.
func Defaults() Config {
	return Config{
		Subgraph: SubgraphConfig{
			ChainID:     "56",
			HTTPTimeout: duration{30 * time.Second},
		},
		LogLevel: "info",
	}
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and returns
// a combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	if strings.TrimSpace(c.Subgraph.APIKey) == "" {
		errs = append(errs, "subgraph: api_key must not be empty")
	}
	if _, ok := subgraphEndpoints[c.Subgraph.ChainID]; !ok {
		errs = append(errs, fmt.Sprintf("subgraph: unsupported chain_id %q (supported: %s)",
			c.Subgraph.ChainID, strings.Join(SupportedChainIDs(), ", ")))
	}
	if c.Subgraph.HTTPTimeout.Duration <= 0 {
		errs = append(errs, "subgraph: http_timeout must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
