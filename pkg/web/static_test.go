package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/JaimeStill/discourse/pkg/web"
)

var assets = fstest.MapFS{
	"static/app.css":        {Data: []byte("body{}")},
	"static/favicon.svg":    {Data: []byte("<svg/>")},
	"static/fonts/read.txt": {Data: []byte("fonts")},
}

func TestStatic(t *testing.T) {
	handler, err := web.Static(assets, "static", "/static/", time.Hour)
	if err != nil {
		t.Fatalf("Static: %v", err)
	}

	tests := []struct {
		name   string
		target string
		want   int
		body   string
	}{
		{"found", "/static/app.css", http.StatusOK, "body{}"},
		{"nested", "/static/fonts/read.txt", http.StatusOK, "fonts"},
		{"missing", "/static/app.js", http.StatusNotFound, ""},
		{"root listing", "/static/", http.StatusNotFound, ""},
		{"dir listing", "/static/fonts/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", tt.target, nil))

			if rec.Code != tt.want {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.want)
			}
			if tt.body == "" {
				return
			}
			if rec.Body.String() != tt.body {
				t.Errorf("body: got %q, want %q", rec.Body.String(), tt.body)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
				t.Errorf("cache-control: got %q", cc)
			}
		})
	}
}

func TestStaticNoCache(t *testing.T) {
	handler, err := web.Static(assets, "static", "/static/", 0)
	if err != nil {
		t.Fatalf("Static: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/static/app.css", nil))
	if cc := rec.Header().Get("Cache-Control"); cc != "" {
		t.Errorf("cache-control: got %q, want none", cc)
	}
}

func TestFileRoutes(t *testing.T) {
	list, err := web.FileRoutes(assets, "static", "favicon.svg")
	if err != nil {
		t.Fatalf("FileRoutes: %v", err)
	}
	if len(list) != 1 || list[0].Method != "GET" || list[0].Pattern != "/favicon.svg" {
		t.Fatalf("routes: got %+v", list)
	}

	rec := httptest.NewRecorder()
	list[0].Handler(rec, httptest.NewRequest("GET", "/favicon.svg", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "<svg/>" {
		t.Errorf("favicon: got %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content-type: got %q", ct)
	}
}

func TestFileRoutesMissing(t *testing.T) {
	if _, err := web.FileRoutes(assets, "static", "favicon.svg", "robots.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
