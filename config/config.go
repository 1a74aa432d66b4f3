// Package config holds the initialization parameters for a request-state
// store. A Config is used only while building a store; the string fields
// are resolved against the observability and persister registries.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config selects the whitelisted base types, the observer and the snapshot
// persister of a store.
//
// Example JSON:
//
//	{
//	  "types": ["FETCH_USER", "SAVE_USER"],
//	  "observer": "slog",
//	  "persister": "json",
//	  "snapshot_dir": "/var/lib/reqstate"
//	}
type Config struct {
	// Types lists base action types; error and success variants are derived.
	Types []string `json:"types,omitempty" yaml:"types,omitempty" env:"REQSTATE_TYPES" envSeparator:","`

	// Observer names a registered observer ("noop", "slog", ...).
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty" env:"REQSTATE_OBSERVER"`

	// Persister names the snapshot backend: "memory", "json", "yaml" or a
	// registered custom persister.
	Persister string `json:"persister,omitempty" yaml:"persister,omitempty" env:"REQSTATE_PERSISTER"`

	// SnapshotDir is the directory used by the "json" and "yaml" persisters.
	SnapshotDir string `json:"snapshot_dir,omitempty" yaml:"snapshot_dir,omitempty" env:"REQSTATE_SNAPSHOT_DIR"`
}

// DefaultConfig returns a Config with an empty whitelist, slog observer and
// in-memory snapshots.
func DefaultConfig() Config {
	return Config{
		Observer:  "slog",
		Persister: "memory",
	}
}

// Merge applies non-zero values from source into c. A non-empty Types list
// in source replaces the current one.
func (c *Config) Merge(source *Config) {
	if len(source.Types) > 0 {
		c.Types = source.Types
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.Persister != "" {
		c.Persister = source.Persister
	}
	if source.SnapshotDir != "" {
		c.SnapshotDir = source.SnapshotDir
	}
}

// LoadConfig reads a JSON or YAML (.yaml, .yml) config file, merges it over
// the defaults and then applies REQSTATE_* environment overrides.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Merge(&loaded)

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv merges REQSTATE_* environment variables into c. Unset variables
// leave c unchanged.
func (c *Config) ApplyEnv() error {
	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Merge(&fromEnv)
	return nil
}
