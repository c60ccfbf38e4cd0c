// Package api assembles the JSON API module: catalog browsing, card
// rendering, paged item search, one-shot proposal and polishing requests,
// and the served API description.
package api

import (
	"net/http"

	"github.com/JaimeStill/discourse/internal/config"
	"github.com/JaimeStill/discourse/internal/infrastructure"
	"github.com/JaimeStill/discourse/pkg/middleware"
	"github.com/JaimeStill/discourse/pkg/module"
)

// NewModule creates the API module with all handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	patterns, err := registerRoutes(mux, runtime, domain)
	if err != nil {
		return nil, err
	}
	runtime.Logger.Debug("routes registered", "count", len(patterns), "patterns", patterns)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger), middleware.Recover(runtime.Logger))

	return m, nil
}
