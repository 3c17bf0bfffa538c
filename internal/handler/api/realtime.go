package api

import (
	"log/slog"
	"net/http"

	"marina-ops/internal/infra/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Token auth happens before the upgrade; origin is not rechecked.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// @Summary Change event stream
// @Description Upgrade to websocket and receive change events for dashboard refetch
// @Tags realtime
// @Security BearerAuth
// @Router /ws [get]
func (h *RealtimeHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	h.hub.Register(conn)

	// The hub owns writes. Reading here only serves to detect disconnects and
	// discard anything the client sends.
	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
