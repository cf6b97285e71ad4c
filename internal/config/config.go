// Package config loads classifier settings from a YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Count store backends. The SQLite values double as database/sql driver names.
const (
	StoreMemory  = "memory"
	StoreSQLite  = "sqlite"  // modernc.org/sqlite
	StoreSQLite3 = "sqlite3" // github.com/mattn/go-sqlite3
)

// Config holds all runtime configuration.
type Config struct {
	Store     string `yaml:"store"`
	LogLevel  string `yaml:"log_level"`
	Precision int    `yaml:"precision"`
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		Store:     StoreMemory,
		LogLevel:  "warning",
		Precision: 3,
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path skips the file. CLASSIFIER_CONFIG overrides path;
// CLASSIFIER_STORE, CLASSIFIER_LOG_LEVEL and CLASSIFIER_PRECISION override
// individual settings.
func Load(path string) (Config, error) {
	if envPath := os.Getenv("CLASSIFIER_CONFIG"); envPath != "" {
		path = envPath
	}

	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if v := os.Getenv("CLASSIFIER_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("CLASSIFIER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CLASSIFIER_PRECISION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing CLASSIFIER_PRECISION: %w", err)
		}
		cfg.Precision = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that values are valid.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite, StoreSQLite3:
	default:
		return fmt.Errorf("store must be one of %s, %s, %s; got %q", StoreMemory, StoreSQLite, StoreSQLite3, c.Store)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17, got %d", c.Precision)
	}
	return nil
}

// Level returns the parsed log level. Validate must have succeeded.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
