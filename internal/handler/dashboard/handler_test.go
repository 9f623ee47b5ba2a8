package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	healthmodel "github.com/pfhealth/vitality-engine/internal/model/health"
	chatservice "github.com/pfhealth/vitality-engine/internal/service/chat"
	documentservice "github.com/pfhealth/vitality-engine/internal/service/document"
	healthservice "github.com/pfhealth/vitality-engine/internal/service/health"
)

func TestGetSummary(t *testing.T) {
	chatSvc := chatservice.NewService()
	docSvc := documentservice.NewService()
	handler := New(healthservice.NewService(), chatSvc, docSvc, zap.NewNop())

	ctx := context.Background()
	chatSvc.Create(ctx, "hi", "alice")
	chatSvc.Create(ctx, "yo", "bob")
	docSvc.Create(ctx, "plan", "stretches")

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var summary healthmodel.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.MessageCount != 2 {
		t.Fatalf("expected 2 messages, got %d", summary.MessageCount)
	}
	if summary.DocumentCount != 1 {
		t.Fatalf("expected 1 document, got %d", summary.DocumentCount)
	}
	if len(summary.Chart) != 7 {
		t.Fatalf("expected 7 chart points, got %d", len(summary.Chart))
	}
	if summary.WeeklyAverage < 65 || summary.WeeklyAverage > 95 {
		t.Fatalf("weekly average out of range: %d", summary.WeeklyAverage)
	}
	if summary.GeneratedAt.IsZero() {
		t.Fatal("generated_at must be set")
	}
}
