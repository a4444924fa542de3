package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	Symbols map[string]string `yaml:"symbols" json:"symbols" toml:"symbols"`
	Options Options           `yaml:"options" json:"options" toml:"options"`
}

// Options represents generation options.
type Options struct {
	Package           string   `yaml:"package" json:"package" toml:"package"`
	Header            string   `yaml:"header" json:"header" toml:"header"`
	EmitUnitLists     *bool    `yaml:"emitUnitLists" json:"emitUnitLists" toml:"emitUnitLists"`
	IncludeQuantities []string `yaml:"includeQuantities" json:"includeQuantities" toml:"includeQuantities"`
	ExcludeQuantities []string `yaml:"excludeQuantities" json:"excludeQuantities" toml:"excludeQuantities"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Symbols: DefaultSymbols(),
		Options: DefaultOptions(),
	}
}

// LoadFile loads configuration from a file (YAML, JSON or TOML based on extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return errors.Wrap(err, "parsing YAML config")
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return errors.Wrap(err, "parsing JSON config")
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &loaded); err != nil {
			return errors.Wrap(err, "parsing TOML config")
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return errors.WithHint(
					errors.New("unable to parse config as YAML or JSON"),
					"use a .yaml, .json or .toml extension")
			}
		}
	}

	// Merge loaded config with defaults
	c.merge(&loaded)

	return nil
}

// merge merges the loaded config into the current config.
func (c *Config) merge(loaded *Config) {
	// Loaded symbols override defaults
	for k, v := range loaded.Symbols {
		c.Symbols[k] = v
	}

	if loaded.Options.Package != "" {
		c.Options.Package = loaded.Options.Package
	}
	if loaded.Options.Header != "" {
		c.Options.Header = loaded.Options.Header
	}
	// EmitUnitLists defaults to true, so only an explicit value overrides it
	if loaded.Options.EmitUnitLists != nil {
		c.Options.EmitUnitLists = loaded.Options.EmitUnitLists
	}
	if loaded.Options.IncludeQuantities != nil {
		c.Options.IncludeQuantities = loaded.Options.IncludeQuantities
	}
	if loaded.Options.ExcludeQuantities != nil {
		c.Options.ExcludeQuantities = loaded.Options.ExcludeQuantities
	}
}

// Symbol returns the display symbol for a unit, or fallback if none is configured.
func (c *Config) Symbol(unit, fallback string) string {
	if s, ok := c.Symbols[unit]; ok {
		return s
	}
	return fallback
}

// UnitLists reports whether per-quantity unit list functions are emitted.
func (c *Config) UnitLists() bool {
	return c.Options.EmitUnitLists == nil || *c.Options.EmitUnitLists
}

// ShouldIncludeQuantity checks if a quantity should be generated based on config.
func (c *Config) ShouldIncludeQuantity(name string) bool {
	// Check include list (if specified, quantity must be in it)
	if len(c.Options.IncludeQuantities) > 0 {
		found := false
		for _, q := range c.Options.IncludeQuantities {
			if q == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Check exclude list
	for _, q := range c.Options.ExcludeQuantities {
		if q == name {
			return false
		}
	}

	return true
}
