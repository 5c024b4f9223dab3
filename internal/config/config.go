// Package config provides YAML-based server configuration loading.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration, loaded from config.yaml.
// Secrets (DATABASE_URL) stay in the environment and never live here.
type Config struct {
	Addr        string       `yaml:"addr"`
	FrontendURL string       `yaml:"frontend_url"`
	Health      HealthConfig `yaml:"health"`
	RateLimit   RateLimit    `yaml:"rate_limit"`
}

// HealthConfig selects how per-signal flags reduce to one status.
type HealthConfig struct {
	// Classifier is "max" (worst flag wins) or "mean" (flags averaged).
	Classifier string `yaml:"classifier"`
}

// RateLimit bounds request volume per client IP.
type RateLimit struct {
	PerMinute      int `yaml:"per_minute"`
	TrustedProxies int `yaml:"trusted_proxies"`
}

// Load reads a YAML config file from path and returns a validated Config.
// A missing file yields the defaults so a bare checkout still runs.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Parse(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.FrontendURL == "" {
		c.FrontendURL = "http://localhost:5173"
	}
	if c.Health.Classifier == "" {
		c.Health.Classifier = "max"
	}
	if c.RateLimit.PerMinute == 0 {
		c.RateLimit.PerMinute = 120
	}
	if c.RateLimit.TrustedProxies == 0 {
		c.RateLimit.TrustedProxies = 1
	}
}

func (c *Config) validate() error {
	var errs []string
	switch c.Health.Classifier {
	case "max", "mean":
	default:
		errs = append(errs, fmt.Sprintf("health.classifier must be max or mean, got %q", c.Health.Classifier))
	}
	if c.RateLimit.PerMinute < 0 {
		errs = append(errs, "rate_limit.per_minute must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
