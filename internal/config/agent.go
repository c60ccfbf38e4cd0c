package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvAgentProvider = "DISCOURSE_AGENT_PROVIDER"
	EnvAgentModel    = "DISCOURSE_AGENT_MODEL"
	EnvAgentBaseURL  = "DISCOURSE_AGENT_BASE_URL"
	EnvAgentTimeout  = "DISCOURSE_AGENT_TIMEOUT"
)

// DefaultAPIKeyEnv lists the variables consulted for a credential when the
// config file does not set one.
var DefaultAPIKeyEnv = []string{"DISCOURSE_API_KEY", "API_KEY"}

var defaultModels = map[string]string{
	"gemini": "gemini-2.0-flash",
	"openai": "gpt-4o-mini",
}

// AgentConfig selects the generative language service.
type AgentConfig struct {
	Provider  string   `toml:"provider"`
	Model     string   `toml:"model"`
	BaseURL   string   `toml:"base_url"`
	APIKey    string   `toml:"api_key"`
	APIKeyEnv []string `toml:"api_key_env"`
	Timeout   string   `toml:"timeout"`
}

// Credential returns APIKey, or the first non-empty variable in APIKeyEnv.
// It reads the environment on every call so a rotated key is picked up
// without a restart.
func (c *AgentConfig) Credential() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	for _, name := range c.APIKeyEnv {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *AgentConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AgentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.APIKeyEnv != nil {
		c.APIKeyEnv = overlay.APIKeyEnv
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *AgentConfig) loadDefaults() {
	if c.Provider == "" {
		c.Provider = "gemini"
	}
	if c.APIKeyEnv == nil {
		c.APIKeyEnv = DefaultAPIKeyEnv
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *AgentConfig) loadEnv() {
	if v := os.Getenv(EnvAgentProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvAgentModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAgentTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *AgentConfig) validate() error {
	model, ok := defaultModels[c.Provider]
	if !ok {
		return fmt.Errorf("unsupported provider: %s", c.Provider)
	}
	if c.Model == "" {
		c.Model = model
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
