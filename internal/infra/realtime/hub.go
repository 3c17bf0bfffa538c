package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"marina-ops/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Op is the kind of change carried by an event.
type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// ChangeEvent tells dashboard clients which table changed so they can
// re-fetch. The payload is intentionally thin; clients never trust it as the
// row itself.
type ChangeEvent struct {
	Table    string    `json:"table"`
	Op       Op        `json:"op"`
	EntityID uuid.UUID `json:"entity_id"`
}

// Publisher is what commands see: fire-and-forget change notification after a
// committed write.
type Publisher interface {
	Publish(event ChangeEvent)
}

// Hub fans committed change events out to connected websocket clients.
type Hub struct {
	clients      map[*websocket.Conn]bool
	register     chan *websocket.Conn
	unregister   chan *websocket.Conn
	broadcast    chan []byte
	mu           sync.RWMutex
	writeTimeout time.Duration
	logger       *slog.Logger
}

func NewHub(cfg config.RealtimeConfig, logger *slog.Logger) *Hub {
	return &Hub{
		clients:      make(map[*websocket.Conn]bool),
		register:     make(chan *websocket.Conn),
		unregister:   make(chan *websocket.Conn),
		broadcast:    make(chan []byte, cfg.SendBufferSize),
		writeTimeout: cfg.WriteTimeout,
		logger:       logger,
	}
}

// Run owns the client set. It exits when ctx is cancelled, closing every
// connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("websocket client connected", "total", total)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("websocket client disconnected", "total", total)

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					h.logger.Warn("failed to write to websocket client", "error", err.Error())
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues a change event for broadcast. Events are dropped, never
// blocked on, when the buffer is full: the worst case for a client is one
// extra refetch.
func (h *Hub) Publish(event ChangeEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal change event", "error", err.Error())
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast buffer full, dropping change event",
			"table", event.Table, "op", string(event.Op))
	}
}

// Register hands a freshly upgraded connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister detaches and closes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}
