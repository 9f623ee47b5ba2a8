package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	healthservice "github.com/pfhealth/vitality-engine/internal/service/health"
	"github.com/pfhealth/vitality-engine/pkg/utils"
)

// Handler serves the recovery metrics endpoints.
type Handler struct {
	healthSvc *healthservice.Service
}

// New creates the health handler.
func New(healthSvc *healthservice.Service) *Handler {
	return &Handler{healthSvc: healthSvc}
}

// RegisterRoutes registers the metrics and recovery chart routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/metrics", h.handleMetrics)
	r.Get("/recovery/chart", h.handleRecoveryChart)
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.healthSvc.Metrics(r.Context()))
}

func (h *Handler) handleRecoveryChart(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.healthSvc.RecoveryChart(r.Context()))
}
