package config

import (
	"time"

	"github.com/authdog/authdog-go/authdog"
)

// Config represents the complete configuration structure
type Config struct {
	Authdog AuthdogConfig `mapstructure:"authdog"`
	Lookup  LookupConfig  `mapstructure:"lookup"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AuthdogConfig holds Authdog API connection details
type AuthdogConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ClientConfig converts the settings into an SDK client configuration
func (c AuthdogConfig) ClientConfig() authdog.ClientConfig {
	return authdog.ClientConfig{
		BaseURL: c.BaseURL,
		APIKey:  c.APIKey,
		Timeout: c.Timeout,
	}
}

// LookupConfig contains settings for batch token lookups
type LookupConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
