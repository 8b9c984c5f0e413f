// Package config holds the settings of the message registry: payload
// size limits, type URL aliases and logging.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxMessageBytes = 4 * 1024 * 1024
	defaultLogLevel        = "info"
)

type Config struct {
	// Largest packed message payload Unpack accepts, in bytes.
	MaxMessageBytes int `yaml:"maxMessageBytes"`
	// Legacy or alternate type URLs mapped to the canonical type URL a
	// message is registered under.
	TypeURLAliases map[string]string `yaml:"typeUrlAliases"`
	// One of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel"`
	// Human-readable console output instead of JSON.
	Development bool `yaml:"development"`
}

// Default returns a Config with every field set to its default.
func Default() Config {
	return Config{}.WithDefaults()
}

// WithDefaults returns a copy of the Config with any missing fields set
// to their default values.
func (c Config) WithDefaults() Config {
	cpy := c
	if cpy.MaxMessageBytes == 0 {
		cpy.MaxMessageBytes = defaultMaxMessageBytes
	}
	if cpy.LogLevel == "" {
		cpy.LogLevel = defaultLogLevel
	}
	if cpy.TypeURLAliases == nil {
		cpy.TypeURLAliases = map[string]string{}
	}
	return cpy
}

// Validate checks the Config for values the registry cannot work with.
func (c Config) Validate() error {
	if c.MaxMessageBytes < 0 {
		return errors.Errorf("maxMessageBytes must not be negative, got %d", c.MaxMessageBytes)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); c.LogLevel != "" && err != nil {
		return errors.Wrap(err, "logLevel")
	}
	for alias, target := range c.TypeURLAliases {
		if !strings.HasPrefix(alias, "/") || !strings.HasPrefix(target, "/") {
			return errors.Errorf("type URL alias %q -> %q: type URLs start with \"/\"", alias, target)
		}
		if _, chained := c.TypeURLAliases[target]; chained {
			return errors.Errorf("type URL alias %q -> %q: target is itself an alias", alias, target)
		}
	}
	return nil
}

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	return Parse(data)
}

// Parse decodes YAML config data, applies defaults and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

// CreateLogger builds a zap logger at the configured level.
func (c Config) CreateLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.WithDefaults().LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}
	var zc zap.Config
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	logger, err := zc.Build()
	return logger, errors.Wrap(err, "create logger")
}
