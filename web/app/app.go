// Package app serves the server-rendered visitor page: the card browser
// and the two AI assistant forms, each backed by the visitor's session.
package app

import (
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/JaimeStill/discourse/internal/config"
	"github.com/JaimeStill/discourse/internal/infrastructure"
	"github.com/JaimeStill/discourse/pkg/middleware"
	"github.com/JaimeStill/discourse/pkg/module"
	"github.com/JaimeStill/discourse/pkg/web"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	layout       = "app.html"
	staticMaxAge = time.Hour
)

var (
	indexView = web.ViewDef{
		Route:    "/{$}",
		Template: "index.html",
		Title:    "제자 삼기 도구 (34선)",
		Bundle:   "app",
	}
	errorView = web.ViewDef{
		Template: "error.html",
		Title:    "페이지를 찾을 수 없습니다",
		Bundle:   "app",
	}
)

// NewModule creates the web app module mounted at the configured app base path.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	basePath := cfg.App.BasePath
	links := infra.Formatter.Links()

	ts, err := web.NewTemplateSet(
		templateFS,
		templateFS,
		"templates/layouts/*.html",
		"templates/views",
		basePath,
		[]web.ViewDef{indexView, errorView},
		funcs(links),
	)
	if err != nil {
		return nil, fmt.Errorf("parse app templates: %w", err)
	}

	h := newHandler(ts, infra, cfg.API.MaxInputSizeBytes())
	router, err := buildRouter(ts, h)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("routes registered", "count", len(router.Patterns()), "patterns", router.Patterns())

	m := module.New(basePath, router)
	m.Use(middleware.Logger(h.logger), middleware.Recover(h.logger))

	return m, nil
}

func buildRouter(ts *web.TemplateSet, h *handler) (*web.Router, error) {
	static, err := web.Static(staticFS, "static", "/static/", staticMaxAge)
	if err != nil {
		return nil, err
	}
	files, err := web.FileRoutes(staticFS, "static", "favicon.svg")
	if err != nil {
		return nil, err
	}

	r := web.NewRouter()

	r.HandleFunc("GET "+indexView.Route, h.index)
	r.HandleFunc("POST /proposal", h.propose)
	r.HandleFunc("POST /proposal/reset", h.resetProposal)
	r.HandleFunc("POST /polish", h.polish)
	r.HandleFunc("POST /polish/reset", h.resetPolish)

	r.Handle("GET /static/", static)
	for _, route := range files {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	r.SetFallback(ts.ErrorHandler(layout, errorView, http.StatusNotFound))

	return r, nil
}
