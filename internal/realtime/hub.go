package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Client is one connected admin panel socket.
type Client struct {
	ID   string
	Conn *WebSocketConn
	Send chan []byte
}

// Hub fans change events out to every connected admin panel, so open
// dashboards know to refetch after a mutation happened elsewhere.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// BroadcastJSON marshals and queues a payload for every connected client.
func (h *Hub) BroadcastJSON(v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("realtime: marshal broadcast payload", zap.Error(err))
		return
	}
	h.broadcast <- b
}

// BroadcastRaw queues an already-encoded payload (used by the Redis relay).
func (h *Hub) BroadcastRaw(b []byte) {
	h.broadcast <- b
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Debug("realtime: client registered", zap.String("id", client.ID))

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.Send)
				h.logger.Debug("realtime: client unregistered", zap.String("id", client.ID))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// slow client, drop it instead of blocking the hub
					close(client.Send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}
