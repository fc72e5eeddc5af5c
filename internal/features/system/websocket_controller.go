package system

import (
	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

type WebSocketController struct {
	hub    *Hub
	logger *zap.Logger
}

func NewWebSocketController(hub *Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		hub:    hub,
		logger: logger,
	}
}

// HandleWebSocket streams activity events to the client until it hangs up.
// Inbound messages are read and discarded to service control frames.
func (h *WebSocketController) HandleWebSocket(c *websocket.Conn) {
	ch := h.hub.register(c)
	defer h.hub.unregister(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case data, ok := <-ch:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Debug("websocket write failed", zap.Error(err))
				return
			}
		case <-done:
			return
		}
	}
}
