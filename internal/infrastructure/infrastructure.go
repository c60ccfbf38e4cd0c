// Package infrastructure provides core service initialization for application startup.
// It assembles the shared systems (logging, catalog, card formatting, the
// composer, and visitor sessions) that the API and web app modules require.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/catalog"
	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/internal/config"
	"github.com/JaimeStill/discourse/internal/provider"
	"github.com/JaimeStill/discourse/internal/sessions"
	"github.com/JaimeStill/discourse/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Catalog   *catalog.Catalog
	Formatter *cards.Formatter
	Composer  *composer.Composer
	Sessions  *sessions.Store
}

// New creates an Infrastructure from the application configuration using
// the configured provider. It initializes all systems but does not start
// them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	dial, err := provider.New(&cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("provider init failed: %w", err)
	}
	return NewWithDialer(cfg, dial, os.Stderr)
}

// NewWithDialer creates an Infrastructure that reaches the language service
// through dial and writes logs to w.
func NewWithDialer(cfg *config.Config, dial composer.Dialer, w io.Writer) (*Infrastructure, error) {
	logger := NewLogger(&cfg.Log, w)

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("catalog init failed: %w", err)
	}

	comp := composer.New(
		dial,
		cfg.Agent.Credential,
		logger,
		cfg.Agent.TimeoutDuration(),
	)

	store := sessions.New(sessions.Config{
		CookieName:    cfg.App.CookieName,
		TTL:           cfg.App.SessionTTLDuration(),
		SweepInterval: cfg.App.SweepIntervalDuration(),
		Path:          cfg.App.BasePath,
	}, logger)

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Catalog:   cat,
		Formatter: cards.New(cards.WithLinks(cfg.Links.Links())),
		Composer:  comp,
		Sessions:  store,
	}, nil
}

// NewLogger builds the slog logger described by cfg.
func NewLogger(cfg *config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Sessions.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("sessions start failed: %w", err)
	}

	i.Lifecycle.OnStartup(func() {
		if !i.Composer.CredentialConfigured() {
			i.Logger.Warn("no agent credential configured; AI features will report a missing key")
		}
		if err := i.Catalog.Validate(); err != nil {
			i.Logger.Warn("catalog has defects", "error", err)
		}
		i.Logger.Info("catalog loaded", "topics", len(i.Catalog.Names()))
	})

	return nil
}
