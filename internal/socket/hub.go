// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

// client wraps a connection with its own write mutex. gorilla/websocket
// allows at most one concurrent writer per connection, and status
// transitions can commit from any number of request goroutines at once.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub tracks connected WebSocket clients, keyed by the caller's subject.
type Hub struct {
	clients map[string]*client
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Register adds a new client to the hub.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = &client{conn: conn}
	log.Printf("WebSocket client registered: %s", userID)
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; ok {
		delete(h.clients, userID)
		log.Printf("WebSocket client unregistered: %s", userID)
	}
}

// Send delivers a message to one client. A missing client is not an error;
// it may simply be offline.
func (h *Hub) Send(userID string, message []byte) error {
	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()

	if !ok {
		log.Printf("WebSocket client not found, could not send message: %s", userID)
		return nil
	}
	return c.write(message)
}

// Broadcast delivers a message to every connected client. Write failures
// are logged and skipped; the read loop will reap dead connections.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	clients := make(map[string]*client, len(h.clients))
	for userID, c := range h.clients {
		clients[userID] = c
	}
	h.mu.RUnlock()

	for userID, c := range clients {
		if err := c.write(message); err != nil {
			log.Printf("WebSocket broadcast to %s failed: %v", userID, err)
		}
	}
}

type statusChangeEvent struct {
	Type   string                    `json:"type"`
	Record models.StatusChangeRecord `json:"record"`
}

// StatusChanged implements the lifecycle service's notifier: every committed
// vehicle status transition is pushed to all connected dashboards.
func (h *Hub) StatusChanged(rec models.StatusChangeRecord) {
	msg, err := json.Marshal(statusChangeEvent{Type: "status_change", Record: rec})
	if err != nil {
		log.Printf("Failed to encode status change event: %v", err)
		return
	}
	h.Broadcast(msg)
}
