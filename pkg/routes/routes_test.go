package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/discourse/pkg/openapi"
	"github.com/JaimeStill/discourse/pkg/routes"
)

func TestRegisterHandlers(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/items",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				},
			},
			{
				Method:  "GET",
				Pattern: "/{id}",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				},
			},
		},
	})

	tests := []struct {
		name   string
		method string
		path   string
		wantOK bool
	}{
		{"list items", "GET", "/items", true},
		{"get item", "GET", "/items/123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			mux.ServeHTTP(rec, req)

			if tt.wantOK && rec.Code != http.StatusOK {
				t.Errorf("status: got %d, want 200", rec.Code)
			}
		})
	}
}

func TestNestedGroups(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/api",
		Children: []routes.Group{
			{
				Prefix: "/v1",
				Routes: []routes.Route{
					{
						Method:  "GET",
						Pattern: "/items",
						Handler: func(w http.ResponseWriter, r *http.Request) {
							w.WriteHeader(http.StatusOK)
						},
					},
				},
			},
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/items", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("nested route: got %d, want 200", rec.Code)
	}
}

func TestPatterns(t *testing.T) {
	noop := func(w http.ResponseWriter, r *http.Request) {}

	got := routes.Patterns(
		routes.Group{
			Routes: []routes.Route{{Method: "GET", Pattern: "/modes", Handler: noop}},
			Children: []routes.Group{{
				Prefix: "/topics",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: noop},
					{Method: "GET", Pattern: "/{topic}/cards", Handler: noop},
				},
			}},
		},
		routes.Group{
			Routes: []routes.Route{{Method: "POST", Pattern: "/proposal", Handler: noop}},
		},
	)

	want := []string{"GET /modes", "GET /topics", "GET /topics/{topic}/cards", "POST /proposal"}
	if len(got) != len(want) {
		t.Fatalf("patterns: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDescribe(t *testing.T) {
	noop := func(w http.ResponseWriter, r *http.Request) {}
	spec := openapi.NewSpec("Test", "1.0.0")

	routes.Describe(spec, "/api", routes.Group{
		Prefix: "/topics",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List topics"}},
			{Method: "GET", Pattern: "/{topic}", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Get topic"}},
			{Method: "POST", Pattern: "/{topic}", Handler: noop},
		},
	})

	if len(spec.Paths) != 2 {
		t.Fatalf("paths: got %d, want 2", len(spec.Paths))
	}
	item, ok := spec.Paths["/api/topics/{topic}"]
	if !ok {
		t.Fatal("missing /api/topics/{topic}")
	}
	if item.Get == nil || item.Get.Summary != "Get topic" {
		t.Errorf("get operation: got %+v", item.Get)
	}
	if item.Post != nil {
		t.Error("undocumented route should be skipped")
	}
}
