// Package config holds the trading constants and file-level configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pricing is the set of trading constants a P&L computation runs under. It is
// passed by value into the matcher so an in-flight computation holds one
// consistent snapshot of the knobs.
type Pricing struct {
	TickValue  float64 `json:"tick_value" yaml:"tick_value"`     // dollars per tick per lot
	TickSize   float64 `json:"tick_size" yaml:"tick_size"`       // minimum price increment
	CostPerLeg float64 `json:"cost_per_leg" yaml:"cost_per_leg"` // dollars per leg per lot, per direction
}

// Config is the complete file configuration.
type Config struct {
	Pricing Pricing       `json:"pricing" yaml:"pricing"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// JournalConfig locates the journal database.
type JournalConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Pricing: Pricing{
			TickValue:  12.50,
			TickSize:   0.005,
			CostPerLeg: 1.65,
		},
		Journal: JournalConfig{DBPath: "./spreadbook.db"},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML. The pricing knobs are mutable
// at runtime, so updates must round-trip through here to survive a restart.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate rejects constants the P&L arithmetic cannot work with.
func (c *Config) Validate() error {
	if c.Pricing.TickSize <= 0 {
		return fmt.Errorf("pricing.tick_size must be positive, got %g", c.Pricing.TickSize)
	}
	if c.Pricing.TickValue <= 0 {
		return fmt.Errorf("pricing.tick_value must be positive, got %g", c.Pricing.TickValue)
	}
	if c.Pricing.CostPerLeg < 0 {
		return fmt.Errorf("pricing.cost_per_leg must not be negative, got %g", c.Pricing.CostPerLeg)
	}
	return nil
}
