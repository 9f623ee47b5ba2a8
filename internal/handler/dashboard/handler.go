package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pfhealth/vitality-engine/internal/model/health"
	chatservice "github.com/pfhealth/vitality-engine/internal/service/chat"
	documentservice "github.com/pfhealth/vitality-engine/internal/service/document"
	healthservice "github.com/pfhealth/vitality-engine/internal/service/health"
	"github.com/pfhealth/vitality-engine/pkg/utils"
)

// Handler serves the aggregated dashboard view.
type Handler struct {
	healthSvc *healthservice.Service
	chatSvc   *chatservice.Service
	docSvc    *documentservice.Service
	logger    *zap.Logger
}

// New creates the dashboard handler.
func New(healthSvc *healthservice.Service, chatSvc *chatservice.Service, docSvc *documentservice.Service, logger *zap.Logger) *Handler {
	return &Handler{
		healthSvc: healthSvc,
		chatSvc:   chatSvc,
		docSvc:    docSvc,
		logger:    logger,
	}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.handleSummary)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chart := h.healthSvc.RecoveryChart(ctx)
	summary := health.Summary{
		Metrics:       h.healthSvc.Metrics(ctx),
		Chart:         chart,
		WeeklyAverage: averageScore(chart),
		MessageCount:  h.chatSvc.Count(ctx),
		DocumentCount: h.docSvc.Count(ctx),
		GeneratedAt:   time.Now().UTC(),
	}

	h.logger.Info("dashboard summary generated",
		zap.Int("message_count", summary.MessageCount),
		zap.Int("document_count", summary.DocumentCount))

	utils.RespondJSON(w, http.StatusOK, summary)
}

func averageScore(points []health.RecoveryDataPoint) int {
	if len(points) == 0 {
		return 0
	}
	total := 0
	for _, point := range points {
		total += point.Score
	}
	return total / len(points)
}
