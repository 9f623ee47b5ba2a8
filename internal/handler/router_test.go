package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/pfhealth/vitality-engine/internal/config"
	chatService "github.com/pfhealth/vitality-engine/internal/service/chat"
	documentService "github.com/pfhealth/vitality-engine/internal/service/document"
	healthService "github.com/pfhealth/vitality-engine/internal/service/health"
)

func setupRouter() http.Handler {
	corsCfg := config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}
	return NewRouter(
		zap.NewNop(),
		corsCfg,
		chatService.NewService(),
		documentService.NewService(),
		healthService.NewService(),
		nil,
	)
}

func TestHealthz(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestTrailingSlashPathsResolve(t *testing.T) {
	r := setupRouter()

	for _, path := range []string{
		"/api/v1/metrics/",
		"/api/v1/recovery/chart",
		"/api/v1/chat-messages/",
		"/api/v1/documents/",
		"/api/v1/dashboard/summary",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestStreamUnavailableWithoutCoach(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat-messages/stream?message=hello", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat-messages", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
}
