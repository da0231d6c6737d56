// Package config loads the fiches configuration from defaults, an optional
// YAML file and environment variables. Command-line flags are applied on top
// by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Id schemes
const (
	SchemeTimestamp = "timestamp"
	SchemeUUID      = "uuid"
)

// Config holds all configuration values for the fiches CLI.
type Config struct {
	// DBPath is the database file. Defaults to "fiches.db".
	DBPath string `yaml:"db"`

	// Backend selects the storage engine: bolt or sqlite. Defaults to "bolt".
	Backend string `yaml:"backend"`

	// LogLevel controls the minimum log level. Defaults to "warn".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json. Defaults to "text".
	LogFormat string `yaml:"log_format"`

	// IDScheme picks how new fiche ids are generated: timestamp or uuid.
	IDScheme string `yaml:"id_scheme"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		DBPath:    "fiches.db",
		Backend:   BackendBolt,
		LogLevel:  "warn",
		LogFormat: FormatText,
		IDScheme:  SchemeTimestamp,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is not empty), then environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.DBPath = getEnv("FICHES_DB", cfg.DBPath)
	cfg.Backend = getEnv("FICHES_BACKEND", cfg.Backend)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("FICHES_LOG_FORMAT", cfg.LogFormat)
	cfg.IDScheme = getEnv("FICHES_ID_SCHEME", cfg.IDScheme)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// пустые поля файла не затирают значения по умолчанию
	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.DBPath = orDefault(fromFile.DBPath, c.DBPath)
	c.Backend = orDefault(fromFile.Backend, c.Backend)
	c.LogLevel = orDefault(fromFile.LogLevel, c.LogLevel)
	c.LogFormat = orDefault(fromFile.LogFormat, c.LogFormat)
	c.IDScheme = orDefault(fromFile.IDScheme, c.IDScheme)

	return nil
}

// Validate checks every enumerated value and reports all problems at once
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if c.Backend != BackendBolt && c.Backend != BackendSQLite {
		errs = append(errs, fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendBolt, BackendSQLite))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q (want %s or %s)", c.LogFormat, FormatText, FormatJSON))
	}
	if c.IDScheme != SchemeTimestamp && c.IDScheme != SchemeUUID {
		errs = append(errs, fmt.Errorf("unknown id scheme %q (want %s or %s)", c.IDScheme, SchemeTimestamp, SchemeUUID))
	}

	return errors.Join(errs...)
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
