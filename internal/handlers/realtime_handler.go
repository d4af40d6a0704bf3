package handlers

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/realtime"
)

// RealtimeHandler is the admin panel change-notification socket. Connected
// panels receive {"recurso": "vagas"|"usuarios"} after every mutation and
// refetch the affected view.
type RealtimeHandler struct {
	Hub    *realtime.Hub
	Logger *zap.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, logger *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{Hub: hub, Logger: logger}
}

func (h *RealtimeHandler) WebSocketHandler(c *websocket.Conn) {
	client := &realtime.Client{
		ID:   uuid.New().String(),
		Conn: realtime.NewWebSocketConn(c),
		Send: make(chan []byte, 256),
	}

	h.Hub.RegisterClient(client)
	defer func() {
		h.Hub.UnregisterClient(client)
		h.Logger.Debug("websocket: panel disconnected", zap.String("client", client.ID))
	}()

	// hub → client
	go func() {
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.Logger.Debug("websocket: write error", zap.Error(err))
				return
			}
		}
	}()

	// client → hub: the panel sends nothing meaningful; reading keeps the
	// connection alive and detects the close.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
