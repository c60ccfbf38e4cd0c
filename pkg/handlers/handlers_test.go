package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/discourse/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
	}{
		{
			name:       "200 with map",
			status:     http.StatusOK,
			data:       map[string]string{"key": "value"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "201 with struct",
			status:     http.StatusCreated,
			data:       struct{ ID int }{ID: 42},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondJSON(rec, tt.status, tt.data)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Errorf("status: got %d, want %d", res.StatusCode, tt.wantStatus)
			}
			if ct := res.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type: got %s", ct)
			}

			body, _ := io.ReadAll(res.Body)
			var parsed map[string]any
			if err := json.Unmarshal(body, &parsed); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, logger, http.StatusBadRequest, errors.New("invalid input"))

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %s", ct)
	}

	body, _ := io.ReadAll(res.Body)
	var parsed map[string]string
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if parsed["error"] != "invalid input" {
		t.Errorf("error: got %s, want invalid input", parsed["error"])
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Situation string `json:"situation"`
	}

	t.Run("within limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"situation":"이웃"}`))

		var got body
		if err := handlers.DecodeJSON(rec, req, 1024, &got); err != nil {
			t.Fatalf("DecodeJSON error: %v", err)
		}
		if got.Situation != "이웃" {
			t.Errorf("situation: got %q", got.Situation)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		payload := `{"situation":"` + strings.Repeat("가", 100) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))

		var got body
		err := handlers.DecodeJSON(rec, req, 32, &got)
		if !errors.Is(err, handlers.ErrBodyTooLarge) {
			t.Errorf("error: got %v, want ErrBodyTooLarge", err)
		}
		if err != nil && !strings.Contains(err.Error(), "limit 32 B") {
			t.Errorf("error: got %q, want readable limit", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"situation":`))

		var got body
		err := handlers.DecodeJSON(rec, req, 1024, &got)
		if err == nil || errors.Is(err, handlers.ErrBodyTooLarge) {
			t.Errorf("error: got %v, want decode error", err)
		}
	})
}
