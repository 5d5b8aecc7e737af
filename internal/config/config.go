// Package config provides configuration loading and validation for the CLI
// and the API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied by MergeWithDefaults when neither the file nor a flag sets a value.
const (
	DefaultWorkers      = 4
	DefaultPort         = 8080
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultFetchTimeout = 30 * time.Second
)

// Config is the job board configuration. It can be loaded from a JSON or
// YAML file; every field is optional.
type Config struct {
	// Inputs
	SkillCache  string `json:"skill_cache,omitempty" yaml:"skill_cache,omitempty"`   // Path to the pre-built O*NET skill cache
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	// Processing
	Workers      int    `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0,lte=256"`
	UseBrowser   bool   `json:"use_browser,omitempty" yaml:"use_browser,omitempty"`     // Render job pages with headless Chrome
	APIKey       string `json:"api_key,omitempty" yaml:"api_key,omitempty"`             // Gemini API key for skill extraction
	FetchTimeout string `json:"fetch_timeout,omitempty" yaml:"fetch_timeout,omitempty"` // Go duration, e.g. "45s"

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=console json"`

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty" validate:"gte=0,lte=65535"`
}

var validate = validator.New()

// LoadConfig loads configuration from a file. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required inputs
// are checked by the commands that need them.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.FetchTimeout != "" {
		d, err := time.ParseDuration(c.FetchTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'fetch_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'fetch_timeout' must be positive")
		}
	}

	if c.SkillCache != "" {
		if _, err := os.Stat(c.SkillCache); os.IsNotExist(err) {
			return fmt.Errorf("config error: skill cache file not found: %s", c.SkillCache)
		}
	}

	return nil
}

// Timeout returns the fetch timeout, or DefaultFetchTimeout when unset or invalid.
func (c *Config) Timeout() time.Duration {
	if c.FetchTimeout == "" {
		return DefaultFetchTimeout
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return DefaultFetchTimeout
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults and then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.SkillCache == "" {
		result.SkillCache = defaults.SkillCache
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.LogLevel == "" {
		result.LogLevel = firstNonEmpty(defaults.LogLevel, DefaultLogLevel)
	}
	if result.LogFormat == "" {
		result.LogFormat = firstNonEmpty(defaults.LogFormat, DefaultLogFormat)
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
		if result.Workers == 0 {
			result.Workers = DefaultWorkers
		}
	}
	if result.Port == 0 {
		result.Port = defaults.Port
		if result.Port == 0 {
			result.Port = DefaultPort
		}
	}

	// Bool fields: cannot distinguish unset from false, so either side enables
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
