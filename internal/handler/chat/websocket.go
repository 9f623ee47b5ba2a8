package chat

import (
	"net/http"

	"go.uber.org/zap"
)

// handleLiveFeed upgrades the connection and pushes each newly appended
// message to the client. Clients fetch the backlog over REST first; the
// feed carries only what arrives after the upgrade.
func (h *Handler) handleLiveFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	key, feed := h.chatSvc.Subscribe()
	defer h.chatSvc.Unsubscribe(key)

	h.logger.Info("chat feed opened", zap.String("subscriber", key))
	defer h.logger.Info("chat feed closed", zap.String("subscriber", key))

	// Read pump exists only to observe the close handshake.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case message, ok := <-feed:
			if !ok {
				return
			}
			if err := conn.WriteJSON(message); err != nil {
				h.logger.Warn("chat feed write failed",
					zap.String("subscriber", key), zap.Error(err))
				return
			}
		}
	}
}
