package api

import (
	"github.com/JaimeStill/discourse/internal/config"
	"github.com/JaimeStill/discourse/internal/infrastructure"
	"github.com/JaimeStill/discourse/pkg/openapi"
	"github.com/JaimeStill/discourse/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	MaxInputSize int64
	Pagination   pagination.Config
	OpenAPI      openapi.Config
	BasePath     string
	Version      string
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &scoped,
		MaxInputSize:   cfg.API.MaxInputSizeBytes(),
		Pagination:     cfg.API.Pagination,
		OpenAPI:        cfg.API.OpenAPI,
		BasePath:       cfg.API.BasePath,
		Version:        cfg.Version,
	}
}
