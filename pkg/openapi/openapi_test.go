package openapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/discourse/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Cards API", "0.1.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi version: got %s, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Title != "Cards API" || spec.Info.Version != "0.1.0" {
		t.Errorf("info: got %+v", spec.Info)
	}
	if spec.Components == nil || spec.Paths == nil {
		t.Fatal("components and paths must be initialized")
	}

	if len(spec.Servers) != 0 {
		t.Errorf("servers: got %+v, want none", spec.Servers)
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    openapi.Config
		server string
	}{
		{"base path server", openapi.Config{Title: "Cards API", Description: "cards"}, "/api"},
		{"configured server", openapi.Config{Title: "Cards API", ServerURL: "https://example.org/api"}, "https://example.org/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := openapi.FromConfig(&tt.cfg, "0.2.0", "/api")

			if spec.Info.Title != tt.cfg.Title || spec.Info.Version != "0.2.0" {
				t.Errorf("info: got %+v", spec.Info)
			}
			if spec.Info.Description != tt.cfg.Description {
				t.Errorf("description: got %q", spec.Info.Description)
			}
			if len(spec.Servers) != 1 || spec.Servers[0].URL != tt.server {
				t.Errorf("servers: got %+v, want %s", spec.Servers, tt.server)
			}
		})
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	spec.AddOperation("GET", "/topics/{topic}", &openapi.Operation{Summary: "get"})
	spec.AddOperation("POST", "/topics/{topic}", &openapi.Operation{Summary: "post"})
	spec.AddOperation("PATCH", "/topics/{topic}", &openapi.Operation{Summary: "patch"})

	item := spec.Paths["/topics/{topic}"]
	if item == nil {
		t.Fatal("path not added")
	}
	if item.Get.Summary != "get" || item.Post.Summary != "post" {
		t.Errorf("operations: got get=%+v post=%+v", item.Get, item.Post)
	}
	if item.Put != nil || item.Delete != nil {
		t.Error("unsupported method should be ignored")
	}
}

func TestRefs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"schema ref", openapi.SchemaRef("Card").Ref, "#/components/schemas/Card"},
		{"response ref", openapi.ResponseRef("NotFound").Ref, "#/components/responses/NotFound"},
		{"request body", openapi.RequestBodyJSON("ProposalRequest", true).Content["application/json"].Schema.Ref, "#/components/schemas/ProposalRequest"},
		{"response body", openapi.ResponseJSON("OK", "Card").Content["application/json"].Schema.Ref, "#/components/schemas/Card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("ref: got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestParams(t *testing.T) {
	p := openapi.PathParam("index", "integer", "Item position")
	if p.In != "path" || !p.Required || p.Schema.Type != "integer" {
		t.Errorf("path param: got %+v", p)
	}

	q := openapi.QueryParam("mode", "string", "Card mode", false)
	if q.In != "query" || q.Required || q.Schema.Type != "string" {
		t.Errorf("query param: got %+v", q)
	}

	params := map[string]*openapi.Parameter{}
	for _, p := range openapi.PageParams(50) {
		params[p.Name] = p
	}
	for _, want := range []string{"page", "page_size", "search"} {
		if params[want] == nil {
			t.Errorf("page params missing %s", want)
		}
	}
	if size := params["page_size"]; size != nil && (size.Schema.Maximum == nil || *size.Schema.Maximum != 50) {
		t.Errorf("page_size maximum: got %v", size.Schema.Maximum)
	}
}

func TestComponents(t *testing.T) {
	c := openapi.NewComponents()

	if _, ok := c.Schemas["PageRequest"]; !ok {
		t.Error("missing default schema PageRequest")
	}
	for _, name := range []string{"BadRequest", "NotFound", "PayloadTooLarge"} {
		if _, ok := c.Responses[name]; !ok {
			t.Errorf("missing default response: %s", name)
		}
	}

	c.AddSchemas(map[string]*openapi.Schema{"Card": {Type: "object"}})
	c.AddResponses(map[string]*openapi.Response{"BadGateway": {Description: "upstream failure"}})

	if _, ok := c.Schemas["Card"]; !ok {
		t.Error("Card schema not added")
	}
	if _, ok := c.Responses["BadGateway"]; !ok {
		t.Error("BadGateway response not added")
	}
	if _, ok := c.Responses["BadRequest"]; !ok {
		t.Error("default BadRequest response should still exist")
	}
}

func TestHandler(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	handler, err := spec.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	spec.AddOperation("GET", "/late", &openapi.Operation{Summary: "late"})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content-type: got %s", ct)
	}

	body, _ := io.ReadAll(res.Body)
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("body unmarshal failed: %v", err)
	}
	if parsed["openapi"] != "3.1.0" {
		t.Errorf("openapi: got %v", parsed["openapi"])
	}
	if paths, _ := parsed["paths"].(map[string]any); len(paths) != 0 {
		t.Errorf("paths added after Handler leaked into output: %v", paths)
	}

	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("conditional status: got %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 carried a body: %q", rec.Body.String())
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := openapi.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Title != "Discourse API" {
		t.Errorf("title: got %s, want Discourse API", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("description default is empty")
	}
}

func TestConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_TITLE", "Custom API")
	t.Setenv("TEST_DESC", "Custom desc")

	cfg := openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_TITLE", Description: "TEST_DESC"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Title != "Custom API" || cfg.Description != "Custom desc" {
		t.Errorf("config: got %+v", cfg)
	}
}

func TestConfigMerge(t *testing.T) {
	base := openapi.Config{Title: "Base", Description: "kept"}
	base.Merge(&openapi.Config{Title: "Overlay"})

	if base.Title != "Overlay" || base.Description != "kept" {
		t.Errorf("merge: got %+v", base)
	}
}

func TestConfigServer(t *testing.T) {
	cfg := openapi.Config{}
	if got := cfg.Server("/api"); got != "/api" {
		t.Errorf("default server: got %s, want /api", got)
	}

	t.Setenv("TEST_SERVER", "https://cards.example/api")
	if err := cfg.Finalize(&openapi.ConfigEnv{ServerURL: "TEST_SERVER"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if got := cfg.Server("/api"); got != "https://cards.example/api" {
		t.Errorf("server override: got %s", got)
	}

	bad := openapi.Config{ServerURL: "http://[::1"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("expected invalid server_url error")
	}
}
