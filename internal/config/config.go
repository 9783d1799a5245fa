package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the usage-history gateway.
// Environment variables are automatically parsed from the PN_TOOL_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Upstream admin API
	AdminBaseURL        string        `envconfig:"ADMIN_BASE_URL" default:"https://admin.pubnub.com"`
	AdminRequestTimeout time.Duration `envconfig:"ADMIN_REQUEST_TIMEOUT" default:"10s"`

	// AdminPageLimit bounds every upstream listing call. No follow-up pages
	// are fetched; accounts with more items than this see a truncated view.
	AdminPageLimit int `envconfig:"ADMIN_PAGE_LIMIT" default:"100"`

	// Health probing
	HealthInterval time.Duration `envconfig:"HEALTH_INTERVAL" default:"30s"`
}

// ResolveDefaults validates the upstream base URL and fills derived values.
func (c *Config) ResolveDefaults() error {
	base := strings.TrimRight(strings.TrimSpace(c.AdminBaseURL), "/")
	if base == "" {
		return fmt.Errorf("ADMIN_BASE_URL is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("ADMIN_BASE_URL must be a valid URL: %q", c.AdminBaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("ADMIN_BASE_URL scheme must be http or https")
	}
	c.AdminBaseURL = base

	if c.AdminPageLimit <= 0 {
		c.AdminPageLimit = 100
	}
	if c.AdminRequestTimeout <= 0 {
		c.AdminRequestTimeout = 10 * time.Second
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: PN_TOOL_ADMIN_BASE_URL, PN_TOOL_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("PN_TOOL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("admin_base_url", cfg.AdminBaseURL).
		Dur("admin_timeout", cfg.AdminRequestTimeout).
		Int("admin_page_limit", cfg.AdminPageLimit).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:         EnvTesting,
		HTTPPort:            8080,
		AdminBaseURL:        "http://localhost:9191",
		AdminRequestTimeout: 2 * time.Second,
		AdminPageLimit:      100,
		HealthInterval:      30 * time.Second,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
