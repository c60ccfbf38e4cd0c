package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvAppBasePath      = "DISCOURSE_APP_BASE_PATH"
	EnvAppSessionTTL    = "DISCOURSE_APP_SESSION_TTL"
	EnvAppSweepInterval = "DISCOURSE_APP_SWEEP_INTERVAL"
	EnvAppCookieName    = "DISCOURSE_APP_COOKIE_NAME"
)

// AppConfig holds settings for the server-rendered web app and its
// visitor sessions.
type AppConfig struct {
	BasePath      string `toml:"base_path"`
	SessionTTL    string `toml:"session_ttl"`
	SweepInterval string `toml:"sweep_interval"`
	CookieName    string `toml:"cookie_name"`
}

// SessionTTLDuration returns SessionTTL as a time.Duration.
func (c *AppConfig) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *AppConfig) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.SessionTTL == "" {
		c.SessionTTL = "2h"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "5m"
	}
	if c.CookieName == "" {
		c.CookieName = "discourse_session"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppSessionTTL); v != "" {
		c.SessionTTL = v
	}
	if v := os.Getenv(EnvAppSweepInterval); v != "" {
		c.SweepInterval = v
	}
	if v := os.Getenv(EnvAppCookieName); v != "" {
		c.CookieName = v
	}
}

func (c *AppConfig) validate() error {
	if err := validateBasePath(c.BasePath); err != nil {
		return err
	}
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.SweepInterval); err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	return nil
}

// validateBasePath enforces the single-level prefix that modules mount on.
func validateBasePath(p string) error {
	if !strings.HasPrefix(p, "/") || strings.Count(p, "/") != 1 || len(p) < 2 {
		return fmt.Errorf("invalid base_path %q: must be a single-level path such as /app", p)
	}
	return nil
}
