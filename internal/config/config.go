// Package config loads annotator settings from annotator.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"entity-annotator/internal/model"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileName is the default config file name.
const FileName = "annotator.yaml"

// Environment variables that override file settings.
const (
	EnvDialect   = "ANNOTATOR_DIALECT"
	EnvJhiPrefix = "ANNOTATOR_JHI_PREFIX"
	EnvKeepGoing = "ANNOTATOR_KEEP_GOING"
)

// DefaultJhiPrefix is the prefix used when nothing else configures one.
const DefaultJhiPrefix = "jhi"

type Config struct {
	// Dialect is the prodDatabaseType for entities that do not declare one.
	Dialect model.Dialect `yaml:"dialect,omitempty"`
	// JhiPrefix is used for entities that do not declare one. An explicit
	// empty string disables prefixing.
	JhiPrefix *string `yaml:"jhiPrefix,omitempty"`
	// ExtraReservedWords adds keywords to the built-in tables.
	ExtraReservedWords map[model.Dialect][]string `yaml:"extraReservedWords,omitempty"`
	// KeepGoing skips entities that fail validation instead of aborting.
	KeepGoing bool `yaml:"keepGoing,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{JhiPrefix: model.String(DefaultJhiPrefix)}
}

// Load reads the config file at path. Unset keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}

		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.Dialect = cfg.Dialect.Normalize()

	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file is missing.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}

	return cfg, err
}

// ApplyEnv overrides settings from environment variables found by lookup.
// os.LookupEnv is the usual lookup; an empty ANNOTATOR_JHI_PREFIX disables
// prefixing.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDialect); ok && strings.TrimSpace(v) != "" {
		c.Dialect = model.Dialect(v).Normalize()
	}

	if v, ok := lookup(EnvJhiPrefix); ok {
		c.JhiPrefix = model.String(strings.TrimSpace(v))
	}

	if v, ok := lookup(EnvKeepGoing); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes":
			c.KeepGoing = true
		case "0", "false", "no":
			c.KeepGoing = false
		}
	}
}

// ApplyEnvFile applies the variables of a dotenv file. The returned error
// wraps fs.ErrNotExist when the file is missing.
func (c *Config) ApplyEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	c.ApplyEnv(func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	})

	return nil
}

// Prefix returns the configured jhiPrefix, or "" when disabled.
func (c *Config) Prefix() string {
	if c.JhiPrefix == nil {
		return ""
	}

	return *c.JhiPrefix
}
