package openapi

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
)

// Spec is the root OpenAPI 3.1 document.
type Spec struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// NewSpec creates an empty document carrying the shared components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    "3.1.0",
		Info:       &Info{Title: title, Version: version},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// FromConfig creates a document described by cfg. The advertised server
// is cfg.ServerURL, or basePath when none is configured.
func FromConfig(cfg *Config, version, basePath string) *Spec {
	s := NewSpec(cfg.Title, version)
	s.Info.Description = cfg.Description
	if server := cfg.Server(basePath); server != "" {
		s.Servers = append(s.Servers, &Server{URL: server})
	}
	return s
}

// AddOperation registers op under path for the given HTTP method.
func (s *Spec) AddOperation(method, path string, op *Operation) {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}
	item.Set(method, op)
}

// Handler serializes the document once and returns a handler serving it.
// Later changes to s are not reflected. Requests whose If-None-Match
// matches the document's ETag receive 304.
func (s *Spec) Handler() (http.HandlerFunc, error) {
	data, err := MarshalJSON(s)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	sum := sha256.Sum256(data)
	etag := `"` + hex.EncodeToString(sum[:8]) + `"`

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}, nil
}
