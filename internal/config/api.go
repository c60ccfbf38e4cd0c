package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/discourse/pkg/formatting"
	"github.com/JaimeStill/discourse/pkg/middleware"
	"github.com/JaimeStill/discourse/pkg/openapi"
	"github.com/JaimeStill/discourse/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "DISCOURSE_CORS_ENABLED",
	Origins:          "DISCOURSE_CORS_ORIGINS",
	AllowedMethods:   "DISCOURSE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "DISCOURSE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "DISCOURSE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "DISCOURSE_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "DISCOURSE_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "DISCOURSE_PAGINATION_MAX_PAGE_SIZE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "DISCOURSE_OPENAPI_TITLE",
	Description: "DISCOURSE_OPENAPI_DESCRIPTION",
	ServerURL:   "DISCOURSE_OPENAPI_SERVER_URL",
}

// APIConfig holds JSON API routing, request size, CORS, pagination, and
// API description settings.
type APIConfig struct {
	BasePath     string                `toml:"base_path"`
	MaxInputSize string                `toml:"max_input_size"`
	CORS         middleware.CORSConfig `toml:"cors"`
	Pagination   pagination.Config     `toml:"pagination"`
	OpenAPI      openapi.Config        `toml:"openapi"`
}

// MaxInputSizeBytes returns MaxInputSize in bytes.
func (c *APIConfig) MaxInputSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxInputSize)
	if err != nil {
		return 64 * 1024
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := validateBasePath(c.BasePath); err != nil {
		return err
	}
	if _, err := formatting.ParseBytes(c.MaxInputSize); err != nil {
		return fmt.Errorf("invalid max_input_size: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxInputSize != "" {
		c.MaxInputSize = overlay.MaxInputSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxInputSize == "" {
		c.MaxInputSize = "64KB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("DISCOURSE_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("DISCOURSE_API_MAX_INPUT_SIZE"); v != "" {
		c.MaxInputSize = v
	}
}
