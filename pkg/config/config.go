// Package config loads the optional ripple.yaml runtime profile.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional ripple.yaml configuration.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Store   StoreConfig   `yaml:"store"`
}

// RuntimeConfig contains reactivity engine settings.
type RuntimeConfig struct {
	// MaxComputedDepth caps nested computed evaluations per instance.
	MaxComputedDepth int `yaml:"maxComputedDepth,omitempty"`
	// VerboseErrors enables stack traces in the error log.
	VerboseErrors bool `yaml:"verboseErrors,omitempty"`
}

// StoreConfig contains shared-store settings.
type StoreConfig struct {
	// PathKey overrides the well-known key the routing layer publishes
	// current-path state under.
	PathKey string `yaml:"pathKey,omitempty"`
}

// Resolved contains resolved configuration values with defaults applied.
type Resolved struct {
	MaxComputedDepth int
	VerboseErrors    bool
	PathKey          string
}

// DefaultMaxComputedDepth mirrors the tracker's default recursion cap.
const DefaultMaxComputedDepth = 10

// LoadOptional reads ripple.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "ripple.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read ripple.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ripple.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads ripple.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolved()
}

// Resolved applies defaults and validates the configuration.
func (c *Config) Resolved() (*Resolved, error) {
	depth := c.Runtime.MaxComputedDepth
	if depth == 0 {
		depth = DefaultMaxComputedDepth
	}
	if depth < 1 {
		return nil, fmt.Errorf("runtime.maxComputedDepth must be positive, got %d", depth)
	}

	pathKey := strings.TrimSpace(c.Store.PathKey)
	if pathKey == "" {
		pathKey = "app.path"
	}

	return &Resolved{
		MaxComputedDepth: depth,
		VerboseErrors:    c.Runtime.VerboseErrors,
		PathKey:          pathKey,
	}, nil
}
