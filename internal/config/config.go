package config

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/brendan.keane/qutil/internal/errors"
)

// Config holds all application configuration
type Config struct {
	// Debug logging
	Debug    bool
	Channels []string

	// Query handling
	Renew     string // forced-renew key for merge
	Separator string // path separator for get

	// Output
	JSON    bool
	Verbose bool
}

// contextKey is a custom type for context keys
type contextKey string

// configKey is the context key for storing config
const configKey contextKey = "config"

// WithConfig adds config to context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) (*Config, bool) {
	cfg, ok := ctx.Value(configKey).(*Config)
	return cfg, ok
}

// NewConfig creates a Config with default values
func NewConfig() *Config {
	return &Config{
		Separator: ".",
	}
}

// LoadFromFlags creates a Config from command line flags
func LoadFromFlags(flags *pflag.FlagSet) (*Config, error) {
	config := NewConfig()

	var err error

	if config.Debug, err = flags.GetBool("debug"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get debug flag")
	}

	if config.Channels, err = flags.GetStringSlice("channel"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get channel flag")
	}
	for i, channel := range config.Channels {
		config.Channels[i] = strings.TrimSpace(channel)
	}

	if config.Renew, err = flags.GetString("renew"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get renew flag")
	}

	if config.Separator, err = flags.GetString("separator"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get separator flag")
	}

	if config.JSON, err = flags.GetBool("json"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get json flag")
	}

	if config.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to get verbose flag")
	}

	// Environment fallbacks (QUTIL_ prefixed to avoid collisions)
	if !config.Debug {
		if v := os.Getenv("QUTIL_DEBUG"); v != "" && v != "0" && !strings.EqualFold(v, "false") {
			config.Debug = true
		}
	}
	if len(config.Channels) == 0 {
		if v := os.Getenv("QUTIL_CHANNELS"); v != "" {
			for _, channel := range strings.Split(v, ",") {
				if channel = strings.TrimSpace(channel); channel != "" {
					config.Channels = append(config.Channels, channel)
				}
			}
		}
	}

	// Configure debug mode for verbose flag
	if config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return config, nil
}

// Validate checks the configuration for contradictions
func (c *Config) Validate() error {
	if c.Separator == "" {
		return errors.New(errors.ErrorTypeValidation, "separator must not be empty").
			WithContext("field", "separator")
	}
	for _, channel := range c.Channels {
		if channel == "" {
			return errors.New(errors.ErrorTypeValidation, "channel names must not be empty").
				WithContext("field", "channel")
		}
	}
	return nil
}
