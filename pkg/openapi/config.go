package openapi

import (
	"fmt"
	"net/url"
	"os"
)

// Config holds the metadata published in the API description. ServerURL
// overrides the advertised server when the service sits behind a proxy;
// empty means the API base path.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	ServerURL   string `toml:"server_url"`
}

// ConfigEnv maps config fields to environment variable names for override injection.
type ConfigEnv struct {
	Title       string
	Description string
	ServerURL   string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	if c.ServerURL != "" {
		if _, err := url.Parse(c.ServerURL); err != nil {
			return fmt.Errorf("invalid server_url: %w", err)
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.ServerURL != "" {
		c.ServerURL = overlay.ServerURL
	}
}

// Server returns the URL to advertise, falling back to basePath.
func (c *Config) Server(basePath string) string {
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return basePath
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Discourse API"
	}
	if c.Description == "" {
		c.Description = "Conversation cards, proposals, and message polishing for field ministry."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	for field, name := range map[*string]string{
		&c.Title:       env.Title,
		&c.Description: env.Description,
		&c.ServerURL:   env.ServerURL,
	} {
		if name == "" {
			continue
		}
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
}
