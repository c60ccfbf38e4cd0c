// Package provider binds composer requests to hosted generative language
// services.
package provider

import (
	"errors"
	"fmt"

	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/internal/config"
)

const (
	Gemini = "gemini"
	OpenAI = "openai"
)

// ErrUnknownProvider is returned for a provider name with no adapter.
var ErrUnknownProvider = errors.New("unknown provider")

// New returns a Dialer for the configured provider.
func New(cfg *config.AgentConfig) (composer.Dialer, error) {
	switch cfg.Provider {
	case Gemini:
		return dialGemini(cfg.Model, cfg.BaseURL), nil
	case OpenAI:
		return dialOpenAI(cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
