package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pfhealth/vitality-engine/internal/model/chat"
	"github.com/pfhealth/vitality-engine/internal/service/ai"
	chatservice "github.com/pfhealth/vitality-engine/internal/service/chat"
	"github.com/pfhealth/vitality-engine/pkg/utils"
)

// Handler streams coach replies over Server-Sent Events.
type Handler struct {
	coach   *ai.Service
	chatSvc *chatservice.Service
	logger  *zap.Logger
}

// New creates a new stream handler.
func New(coach *ai.Service, chatSvc *chatservice.Service, logger *zap.Logger) *Handler {
	return &Handler{coach: coach, chatSvc: chatSvc, logger: logger}
}

// StreamResponse is one SSE payload.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest appends the user message, streams the coach reply
// chunk by chunk, and appends the finished reply to the store.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	// History is captured before the user turn lands so the prompt's
	// query slot stays the single source of the new message.
	history := h.chatSvc.List(ctx)
	userMsg := h.chatSvc.Create(ctx, userMessage, "user")

	h.sendSSE(w, flusher, "start", StreamResponse{Event: "start", MessageID: userMsg.ID})

	reply, err := h.collectReply(ctx, w, flusher, history, userMessage)
	if err != nil {
		h.sendSSE(w, flusher, "error", StreamResponse{Event: "error", Error: "coach reply failed"})
		return err
	}

	saved := h.chatSvc.Create(ctx, reply, ai.CoachSender)
	h.sendSSE(w, flusher, "done", StreamResponse{
		Event:     "done",
		MessageID: saved.ID,
		Finished:  true,
	})

	h.logger.Info("coach reply stored",
		zap.String("message_id", saved.ID),
		zap.Int("length", len(reply)))
	return nil
}

func (h *Handler) collectReply(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, history []chat.Message, userMessage string) (string, error) {
	if !h.coach.StreamingEnabled() {
		response, err := h.coach.GenerateReply(ctx, history, userMessage)
		if err != nil {
			return "", err
		}
		h.sendSSE(w, flusher, "chunk", StreamResponse{Event: "chunk", Content: response.Content})
		return response.Content, nil
	}

	stream, err := h.coach.StreamReply(ctx, history, userMessage)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var builder strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to receive coach chunk: %w", err)
		}
		if chunk.Content == "" {
			continue
		}
		builder.WriteString(chunk.Content)
		h.sendSSE(w, flusher, "chunk", StreamResponse{Event: "chunk", Content: chunk.Content})
	}
	return builder.String(), nil
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, event string, payload StreamResponse) {
	if err := utils.SendSSEEvent(w, flusher, event, payload); err != nil {
		h.logger.Warn("sse write failed", zap.Error(err))
	}
}
