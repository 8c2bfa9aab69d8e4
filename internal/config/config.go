// Package config loads server settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override (BIBLEHEADINGS_PORT, ...).
const EnvPrefix = "BIBLEHEADINGS_"

// BindHost is the fixed listen host; only the port is configurable.
const BindHost = "0.0.0.0"

// Config holds the server settings.
type Config struct {
	Port            int    `koanf:"port"`
	AllowAllOrigins bool   `koanf:"allow_all_origins"`
	APIRateLimit    int    `koanf:"api_rate_limit"`   // requests per minute per IP, 0 disables
	TrustedProxies  string `koanf:"trusted_proxies"`  // comma-separated CIDRs
	ShutdownTimeout int    `koanf:"shutdown_timeout"` // seconds
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		APIRateLimit:    120,
		ShutdownTimeout: 10,
	}
}

// Load reads configuration from the given YAML file if it exists, overlays
// BIBLEHEADINGS_* environment variables, and finally honours a bare PORT
// variable.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: accessing %s: %w", path, err)
		}
	}

	// BIBLEHEADINGS_API_RATE_LIMIT -> api_rate_limit
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading env overrides: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		if err := k.Set("port", port); err != nil {
			return nil, fmt.Errorf("config: applying PORT: %w", err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.APIRateLimit < 0 {
		return fmt.Errorf("config: api_rate_limit must be non-negative")
	}
	if c.ShutdownTimeout < 1 {
		return fmt.Errorf("config: shutdown_timeout must be at least 1 second")
	}
	return nil
}

// Addr returns the listen address, always bound to all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", BindHost, c.Port)
}

// Proxies splits TrustedProxies into individual CIDR or IP entries.
func (c *Config) Proxies() []string {
	var out []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ShutdownGrace returns ShutdownTimeout as a duration.
func (c *Config) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}
