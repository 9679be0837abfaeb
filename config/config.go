package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/authdog/authdog-go/authdog"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "AUTHDOG"

// Load loads the configuration from file and environment. When configPath is
// empty a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".authdog"))
		}

		// Check /etc
		v.AddConfigPath("/etc/authdog/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Authdog defaults
	v.SetDefault("authdog.base_url", "https://api.authdog.com")
	v.SetDefault("authdog.api_key", "")
	v.SetDefault("authdog.timeout", "10s")

	// Lookup defaults
	v.SetDefault("lookup.concurrency", authdog.DefaultConcurrency)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps AUTHDOG_* variables onto config keys. AUTHDOG_LOGGING_LEVEL
// sets logging.level; AUTHDOG_BASE_URL, AUTHDOG_API_KEY and AUTHDOG_TIMEOUT
// are short aliases for the authdog section.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("authdog.base_url", EnvPrefix+"_BASE_URL", EnvPrefix+"_AUTHDOG_BASE_URL")
	_ = v.BindEnv("authdog.api_key", EnvPrefix+"_API_KEY", EnvPrefix+"_AUTHDOG_API_KEY")
	_ = v.BindEnv("authdog.timeout", EnvPrefix+"_TIMEOUT", EnvPrefix+"_AUTHDOG_TIMEOUT")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Authdog.BaseURL == "" {
		return fmt.Errorf("authdog.base_url is required")
	}

	u, err := url.Parse(cfg.Authdog.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid authdog.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid authdog.base_url: scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("invalid authdog.base_url: missing host")
	}

	if cfg.Authdog.Timeout < 0 {
		return fmt.Errorf("authdog.timeout must not be negative")
	}

	if cfg.Lookup.Concurrency < 1 || cfg.Lookup.Concurrency > authdog.MaxConcurrency {
		return fmt.Errorf("lookup.concurrency must be between 1 and %d", authdog.MaxConcurrency)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
