package main

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/discourse/internal/config"
	"github.com/JaimeStill/discourse/internal/infrastructure"
)

type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg.App.BasePath)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"modules", router.Prefixes(),
		"provider", cfg.Agent.Provider,
		"model", cfg.Agent.Model,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

// Run starts the service, blocks until ctx is cancelled, then shuts down
// within timeout.
func (s *Server) Run(ctx context.Context, timeout time.Duration) error {
	if err := s.Start(); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	<-ctx.Done()
	s.infra.Logger.Info("stop requested", "cause", context.Cause(ctx))

	if err := s.Shutdown(timeout); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	s.infra.Logger.Info("discourse stopped")
	return nil
}
