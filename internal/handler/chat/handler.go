package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	chatservice "github.com/pfhealth/vitality-engine/internal/service/chat"
	"github.com/pfhealth/vitality-engine/pkg/utils"
)

// Handler serves the chat message endpoints.
type Handler struct {
	chatSvc  *chatservice.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates the chat handler.
func New(chatSvc *chatservice.Service, logger *zap.Logger) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the chat message routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat-messages", h.handleList)
	r.Post("/chat-messages", h.handleCreate)
	r.Get("/chat-messages/ws", h.handleLiveFeed)
}

// handleList returns every stored message, oldest first.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.chatSvc.List(r.Context()))
}

// handleCreate appends a message. Fields must be present; empty strings
// are accepted as-is.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content *string `json:"content"`
		Sender  *string `json:"sender"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Content == nil {
		utils.RespondError(w, http.StatusBadRequest, "content is required")
		return
	}
	if payload.Sender == nil {
		utils.RespondError(w, http.StatusBadRequest, "sender is required")
		return
	}

	message := h.chatSvc.Create(r.Context(), *payload.Content, *payload.Sender)
	utils.RespondJSON(w, http.StatusCreated, message)
}
