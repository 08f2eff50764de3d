//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-creditgen.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Config holds all configuration for pgedge-creditgen.
type Config struct {
	// Connection is the PostgreSQL connection string used by the loader.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for dataset generation.
	Generate GenerateConfig `mapstructure:"generate"`

	// Load holds configuration for the optional PostgreSQL load.
	Load LoadConfig `mapstructure:"load"`
}

// GenerateConfig holds configuration for producing the dataset.
type GenerateConfig struct {
	// Rows is the number of customer profiles to generate.
	Rows int `mapstructure:"rows"`

	// Output is the path of the delimited file. It is overwritten.
	Output string `mapstructure:"output"`

	// Seed makes a run reproducible. 0 picks a seed from the clock.
	Seed uint64 `mapstructure:"seed"`

	// OutlierRate is the fraction of rows whose income and debt are inflated.
	OutlierRate float64 `mapstructure:"outlier_rate"`

	// PreviewRows is how many rows are printed after the distribution table.
	PreviewRows int `mapstructure:"preview_rows"`

	// Delimiter is the single-character field separator.
	Delimiter string `mapstructure:"delimiter"`

	// AsOf is the reference time for date-relative columns. Empty means
	// the current time. A seed and an as-of time together fix the output.
	AsOf string `mapstructure:"as_of"`
}

// LoadConfig holds configuration for copying the dataset into PostgreSQL.
type LoadConfig struct {
	// Enabled turns on the load step after the file is written.
	Enabled bool `mapstructure:"enabled"`

	// Table is the destination table name.
	Table string `mapstructure:"table"`

	// DropExisting drops the destination table before loading.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Rows:        10000,
			Output:      "enhanced_credit_risk_data.csv",
			OutlierRate: 0.01,
			PreviewRows: 5,
			Delimiter:   ",",
		},
		Load: LoadConfig{
			Table: "credit_profiles",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-creditgen.yaml
// 3. ~/.config/pgedge-creditgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-creditgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-creditgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Generate.Delimiter)
	return r
}

// asOfLayouts are the accepted formats for the as-of time. Layouts
// without a zone are read as UTC.
var asOfLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AsOfTime returns the configured reference time, or the current UTC time
// truncated to the second when none is set.
func (c *Config) AsOfTime() (time.Time, error) {
	if c.Generate.AsOf == "" {
		return time.Now().UTC().Truncate(time.Second), nil
	}
	for _, layout := range asOfLayouts {
		if t, err := time.Parse(layout, c.Generate.AsOf); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("as_of %q must be RFC 3339, YYYY-MM-DD HH:MM:SS or YYYY-MM-DD", c.Generate.AsOf)
}

// ValidateGenerate checks configuration required for generation.
func (c *Config) ValidateGenerate() error {
	g := c.Generate
	if g.Rows < 1 {
		return fmt.Errorf("rows must be at least 1")
	}
	if g.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if g.OutlierRate < 0 || g.OutlierRate > 1 {
		return fmt.Errorf("outlier_rate must be between 0 and 1")
	}
	if g.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must be non-negative")
	}
	if utf8.RuneCountInString(g.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character")
	}
	switch r := c.DelimiterRune(); r {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("delimiter %q is not allowed", r)
	}
	if _, err := c.AsOfTime(); err != nil {
		return err
	}
	return nil
}

// ValidateLoad checks configuration required for the PostgreSQL load.
func (c *Config) ValidateLoad() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required to load")
	}
	if c.Load.Table == "" {
		return fmt.Errorf("load table name is required")
	}
	return nil
}
