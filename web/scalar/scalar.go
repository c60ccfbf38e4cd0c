// Package scalar serves the Scalar API reference UI for the published
// API description.
package scalar

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/discourse/pkg/module"
)

//go:embed index.html
var staticFS embed.FS

var index = template.Must(template.ParseFS(staticFS, "index.html"))

// NewModule creates a module that serves the reference UI at basePath,
// reading the API description from specURL.
func NewModule(basePath, specURL string) *module.Module {
	router := buildRouter(specURL)
	return module.New(basePath, router)
}

func buildRouter(specURL string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		index.Execute(w, map[string]string{"SpecURL": specURL})
	})

	return mux
}
