// Package config loads service configuration from an optional TOML file,
// an environment-specific overlay, and DISCOURSE_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvDiscourseEnv             = "DISCOURSE_ENV"
	EnvDiscourseConfig          = "DISCOURSE_CONFIG"
	EnvDiscourseShutdownTimeout = "DISCOURSE_SHUTDOWN_TIMEOUT"
	EnvDiscourseVersion         = "DISCOURSE_VERSION"

	// ReferencePath is where the API reference UI is mounted.
	ReferencePath = "/scalar"
)

// Config is the root configuration for the discourse service.
type Config struct {
	Server          ServerConfig `toml:"server"`
	Log             LogConfig    `toml:"log"`
	API             APIConfig    `toml:"api"`
	App             AppConfig    `toml:"app"`
	Agent           AgentConfig  `toml:"agent"`
	Links           LinksConfig  `toml:"links"`
	ShutdownTimeout string       `toml:"shutdown_timeout"`
	Version         string       `toml:"version"`
}

// Env returns the DISCOURSE_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvDiscourseEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. DISCOURSE_CONFIG names an alternate base file.
// If no base file exists, defaults and environment variables provide all
// configuration.
func Load() (*Config, error) {
	cfg := &Config{}
	base := baseConfigPath()

	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Log.Merge(&overlay.Log)
	c.API.Merge(&overlay.API)
	c.App.Merge(&overlay.App)
	c.Agent.Merge(&overlay.Agent)
	c.Links.Merge(&overlay.Links)
}

// Finalize applies defaults, environment overrides, and validation to the
// root config and every section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Log.Finalize(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.App.Finalize(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Agent.Finalize(); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Links.Finalize(); err != nil {
		return fmt.Errorf("links: %w", err)
	}
	if c.API.BasePath == c.App.BasePath {
		return fmt.Errorf("api and app base paths must differ: %s", c.API.BasePath)
	}
	if c.API.BasePath == ReferencePath || c.App.BasePath == ReferencePath {
		return fmt.Errorf("base path %s is reserved for the API reference", ReferencePath)
	}
	if c.Server.WriteTimeoutDuration() <= c.Agent.TimeoutDuration() {
		return fmt.Errorf(
			"server write_timeout %s must exceed agent timeout %s",
			c.Server.WriteTimeout, c.Agent.Timeout,
		)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvDiscourseShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvDiscourseVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func baseConfigPath() string {
	if v := os.Getenv(EnvDiscourseConfig); v != "" {
		return v
	}
	return BaseConfigFile
}

func overlayPath() string {
	if env := os.Getenv(EnvDiscourseEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
