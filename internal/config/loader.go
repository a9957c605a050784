package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies VENUSTAGS_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known VENUSTAGS_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject the gateway key at deploy time without touching the
// TOML file.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Subgraph.APIKey, "VENUSTAGS_SUBGRAPH_API_KEY")
	setStr(&cfg.Subgraph.ChainID, "VENUSTAGS_SUBGRAPH_CHAIN_ID")
	setDuration(&cfg.Subgraph.HTTPTimeout, "VENUSTAGS_SUBGRAPH_HTTP_TIMEOUT")

	setStr(&cfg.Output.Path, "VENUSTAGS_OUTPUT_PATH")

	setStr(&cfg.LogLevel, "VENUSTAGS_LOG_LEVEL")
}

// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}
