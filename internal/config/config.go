package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/shawn28e7/trie/internal/trie"
)

// EnvPrefix prefixes environment overrides, e.g. PREFIXMAP_TRIE_VARIANT.
const EnvPrefix = "PREFIXMAP"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the prefixmap tool
type Config struct {
	Trie TrieConfig `mapstructure:"trie"`
	Log  LogConfig  `mapstructure:"log"`
}

// TrieConfig selects and sizes the PrefixMap implementation
type TrieConfig struct {
	Variant  string `mapstructure:"variant"`
	Capacity int    `mapstructure:"capacity"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath uses defaults and environment only. The result is not
// validated so callers can apply their own overrides first.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("trie.variant", string(trie.KindArena))
	v.SetDefault("trie.capacity", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Kind returns the configured PrefixMap implementation.
func (c *TrieConfig) Kind() (trie.Kind, error) {
	return trie.ParseKind(c.Variant)
}

// Options returns the construction options implied by the configuration.
func (c *TrieConfig) Options(logger zerolog.Logger) []trie.Option {
	return []trie.Option{
		trie.WithLogger(logger),
		trie.WithCapacity(c.Capacity),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Trie.Kind(); err != nil {
		return fmt.Errorf("%w: trie.variant: %w", ErrInvalidConfig, err)
	}
	if c.Trie.Capacity < 0 {
		return fmt.Errorf("%w: trie.capacity must not be negative: %d", ErrInvalidConfig, c.Trie.Capacity)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format must be console or json: %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
