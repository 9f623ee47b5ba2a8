package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pfhealth/vitality-engine/internal/config"
	chatHandler "github.com/pfhealth/vitality-engine/internal/handler/chat"
	dashboardHandler "github.com/pfhealth/vitality-engine/internal/handler/dashboard"
	documentHandler "github.com/pfhealth/vitality-engine/internal/handler/document"
	healthHandler "github.com/pfhealth/vitality-engine/internal/handler/health"
	"github.com/pfhealth/vitality-engine/internal/handler/stream"
	middlewarePkg "github.com/pfhealth/vitality-engine/internal/middleware"
	"github.com/pfhealth/vitality-engine/internal/service/ai"
	chatService "github.com/pfhealth/vitality-engine/internal/service/chat"
	documentService "github.com/pfhealth/vitality-engine/internal/service/document"
	healthService "github.com/pfhealth/vitality-engine/internal/service/health"
	"github.com/pfhealth/vitality-engine/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(logger *zap.Logger, corsCfg config.CORSConfig, chatSvc *chatService.Service, docSvc *documentService.Service, healthSvc *healthService.Service, coach *ai.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	// The original API registers trailing-slash paths; accept both forms.
	r.Use(middleware.StripSlashes)
	r.Use(middlewarePkg.CORS(corsCfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "vitality-engine",
		})
	})

	// Create handlers
	chatH := chatHandler.New(chatSvc, logger)
	documentH := documentHandler.New(docSvc)
	healthH := healthHandler.New(healthSvc)
	dashboardH := dashboardHandler.New(healthSvc, chatSvc, docSvc, logger)

	// Coach streaming is only wired when Ark credentials were provided.
	var streamH *stream.Handler
	if coach != nil {
		streamH = stream.New(coach, chatSvc, logger)
	}

	r.Route("/api/v1", func(api chi.Router) {
		healthH.RegisterRoutes(api)
		chatH.RegisterRoutes(api)
		documentH.RegisterRoutes(api)
		dashboardH.RegisterRoutes(api)

		api.Get("/chat-messages/stream", func(w http.ResponseWriter, r *http.Request) {
			userMessage := r.URL.Query().Get("message")

			if streamH == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "coach replies unavailable")
				return
			}
			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamH.HandleStreamRequest(r.Context(), w, userMessage); err != nil {
				logger.Error("coach stream failed", zap.Error(err))
			}
		})
	})

	return r
}
