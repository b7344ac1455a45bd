package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the address the Local REST API plugin listens on by default.
const DefaultAPIURL = "https://127.0.0.1:27124"

// DefaultConfigFile is searched for in the XDG config directories when no
// explicit path is given.
const DefaultConfigFile = "obsidian-cli/config.yaml"

// Config holds everything an invocation needs to talk to the Local REST API.
type Config struct {
	APIKey   string `mapstructure:"api_key"`
	APIURL   string `mapstructure:"api_url"`
	LogLevel string `mapstructure:"log_level"`
	MCP      struct {
		Tools map[string]bool `mapstructure:"tools"`
	} `mapstructure:"mcp"`
}

// Error reports a configuration problem detected before any request is made.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrMissingAPIKey is the configuration error returned when no API key is set.
var ErrMissingAPIKey = &Error{Message: "OBSIDIAN_API_KEY not set. Get it from Obsidian Settings → Local REST API"}

// Load builds the configuration from the environment and an optional YAML file.
// Environment variables (OBSIDIAN_API_KEY, OBSIDIAN_API_URL, OBSIDIAN_LOG_LEVEL)
// take precedence over the file.
// If path is empty, it searches for "obsidian-cli/config.yaml" in XDG config
// directories; a missing file is not an error in that case.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("OBSIDIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("log_level", "warn")
	for _, key := range []string{"api_key", "api_url", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if path == "" {
		if found, err := xdg.SearchConfigFile(DefaultConfigFile); err == nil {
			path = found
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// ToolEnabled reports whether the named MCP tool should be registered.
// Tools not mentioned in the configuration are enabled.
func (c *Config) ToolEnabled(name string) bool {
	enabled, ok := c.MCP.Tools[name]
	return !ok || enabled
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}
