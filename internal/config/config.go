// Package config resolves command settings from flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyChunkSize = "chunk-size"
	KeyLimit     = "limit"
	KeyInterval  = "interval"
	KeyQuiet     = "quiet"
	KeyDebug     = "debug"
	KeyBar       = "bar"

	DefaultChunkSize = 8192
	DefaultInterval  = 16 * time.Millisecond
)

// Config holds the settings shared by every command.
type Config struct {
	ChunkSize int           // buffer size for each Read/Write call
	Limit     int64         // stop after this many bytes, 0 means no limit
	Interval  time.Duration // progress log period
	Quiet     bool
	Debug     bool
	Bar       bool // render a progress bar instead of log lines
}

// New returns a viper instance with defaults and PROGSTREAM_ env binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PROGSTREAM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyChunkSize, DefaultChunkSize)
	v.SetDefault(KeyLimit, 0)
	v.SetDefault(KeyInterval, DefaultInterval)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyBar, false)
	return v
}

// Load reads the optional config file and validates the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		ChunkSize: v.GetInt(KeyChunkSize),
		Limit:     v.GetInt64(KeyLimit),
		Interval:  v.GetDuration(KeyInterval),
		Quiet:     v.GetBool(KeyQuiet),
		Debug:     v.GetBool(KeyDebug),
		Bar:       v.GetBool(KeyBar),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk-size must be positive, got %d", c.ChunkSize)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	return nil
}
