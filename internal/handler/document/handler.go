package document

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	documentservice "github.com/pfhealth/vitality-engine/internal/service/document"
	"github.com/pfhealth/vitality-engine/pkg/utils"
)

// Handler serves the document endpoints.
type Handler struct {
	docSvc *documentservice.Service
}

// New creates the document handler.
func New(docSvc *documentservice.Service) *Handler {
	return &Handler{docSvc: docSvc}
}

// RegisterRoutes registers the document routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/documents", h.handleList)
	r.Post("/documents", h.handleCreate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.docSvc.List(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Title == nil {
		utils.RespondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if payload.Content == nil {
		utils.RespondError(w, http.StatusBadRequest, "content is required")
		return
	}

	doc := h.docSvc.Create(r.Context(), *payload.Title, *payload.Content)
	utils.RespondJSON(w, http.StatusCreated, doc)
}
