package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/Arking-xx/College-Thesis/foundation/core/error"
)

// EnvVar names the environment variable holding the config file path
const EnvVar = "KENGEN_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Translate TranslateConfig `toml:"translate" yaml:"translate"`
	Augment   AugmentConfig   `toml:"augment" yaml:"augment"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// TranslateConfig holds code generation settings
type TranslateConfig struct {
	// UseMain keeps main as a function behind a __main__ guard when
	// generating Python
	UseMain     bool `toml:"use_main" yaml:"use_main"`
	IndentWidth int  `toml:"indent_width" yaml:"indent_width"`
}

// AugmentConfig holds the optional commenting service settings
type AugmentConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	BaseURL   string   `toml:"base_url" yaml:"base_url"`
	Model     string   `toml:"model" yaml:"model"`
	Timeout   Duration `toml:"timeout" yaml:"timeout"`
	CacheTTL  Duration `toml:"cache_ttl" yaml:"cache_ttl"`
	CacheSize int      `toml:"cache_size" yaml:"cache_size"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "config file not readable").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in service settings
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the KENGEN_CONFIG environment
// variable or the first default location that exists. Without either the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./configs/kengen.toml",
		"./kengen.toml",
		"./kengen.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/kengen/config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Translate
	if c.Translate.IndentWidth == 0 {
		c.Translate.IndentWidth = 4
	}

	// Augment
	if c.Augment.BaseURL == "" {
		c.Augment.BaseURL = "http://localhost:11434"
	}
	if c.Augment.Model == "" {
		c.Augment.Model = "qwen2.5-coder:7b"
	}
	if c.Augment.Timeout.Duration == 0 {
		c.Augment.Timeout.Duration = 60 * time.Second
	}
	if c.Augment.CacheTTL.Duration == 0 {
		c.Augment.CacheTTL.Duration = time.Hour
	}
	if c.Augment.CacheSize == 0 {
		c.Augment.CacheSize = 128
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Augment.BaseURL = os.ExpandEnv(c.Augment.BaseURL)
	c.Augment.Model = os.ExpandEnv(c.Augment.Model)
}

// Validate checks value ranges after defaults have been applied
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid %s: %s", field, reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", fmt.Sprint(value))
	}

	switch strings.ToLower(c.General.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return invalid("general.log_level", c.General.LogLevel, "unknown level")
	}
	switch strings.ToLower(c.General.LogFormat) {
	case "text", "console", "json":
	default:
		return invalid("general.log_format", c.General.LogFormat, "expected text or json")
	}
	if c.Translate.IndentWidth < 1 || c.Translate.IndentWidth > 8 {
		return invalid("translate.indent_width", c.Translate.IndentWidth, "must be between 1 and 8")
	}
	if c.Augment.Timeout.Duration < 0 {
		return invalid("augment.timeout", c.Augment.Timeout, "must not be negative")
	}
	if c.Augment.CacheSize < 0 {
		return invalid("augment.cache_size", c.Augment.CacheSize, "must not be negative")
	}
	if c.Augment.Enabled && !strings.HasPrefix(c.Augment.BaseURL, "http://") && !strings.HasPrefix(c.Augment.BaseURL, "https://") {
		return invalid("augment.base_url", c.Augment.BaseURL, "must be an http or https URL")
	}
	return nil
}
