// Package config loads the optional .nucent.yaml configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ConfigFileName is the configuration file looked up in the working directory.
const ConfigFileName = ".nucent.yaml"

// Config is the main configuration structure for nucent.
type Config struct {
	// Extensions are the project-file extensions collected during the scan.
	Extensions []string `yaml:"extensions,omitempty"`

	// Excludes are extra directory name patterns skipped during the scan,
	// on top of the built-in ignore set.
	Excludes []string `yaml:"excludes,omitempty"`

	// SortProps enables rewriting the centralized properties file with each
	// group's properties sorted alphabetically.
	SortProps bool `yaml:"sort-props,omitempty"`
}

// defaultExtensions are the project-file extensions scanned when no
// configuration overrides them.
var defaultExtensions = []string{".csproj", ".fsproj"}

// Default returns the configuration used when no .nucent.yaml exists.
func Default() *Config {
	return &Config{Extensions: defaultExtensions}
}

// GetExtensions returns the configured project-file extensions, falling back
// to the defaults.
func (c *Config) GetExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return defaultExtensions
	}
	return c.Extensions
}

// GetExcludes returns the configured extra exclude patterns.
func (c *Config) GetExcludes() []string {
	if c == nil {
		return nil
	}
	return c.Excludes
}

// LoadConfigFn loads configuration; it is a variable so tests can stub it.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	data, err := os.ReadFile(ConfigFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	return cfg, nil
}
