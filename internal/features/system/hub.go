package system

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Event is a back-office activity notice pushed to connected admin clients.
type Event struct {
	Kind      string      `json:"kind"` // order, audit
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub fans events out to all connected websocket clients. Slow clients
// are dropped rather than allowed to block the rest.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]chan []byte
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]chan []byte),
		logger:  logger,
	}
}

func (h *Hub) register(conn *websocket.Conn) chan []byte {
	ch := make(chan []byte, 16)

	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()

	return ch
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if ch, ok := h.clients[conn]; ok {
		close(ch)
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}

// Broadcast never blocks the caller. Events to clients with a full send
// buffer are dropped.
func (h *Hub) Broadcast(kind string, payload interface{}) {
	event := Event{Kind: kind, Payload: payload, Timestamp: time.Now()}
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("could not marshal event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.clients {
		select {
		case ch <- data:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
