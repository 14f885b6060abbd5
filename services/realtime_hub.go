package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event kinds pushed to connected clients after successful mutations, so the
// UI re-reads updated state without polling.
const (
	EventLogUpdated     = "log.updated"
	EventProfileUpdated = "profile.updated"
	EventFoodsUpdated   = "foods.updated"
)

type WSClient struct {
	Conn *websocket.Conn

	// serializes writes; gorilla/websocket allows at most one concurrent
	// writer per connection, and broadcasts race the keepalive pings
	writeMu sync.Mutex
}

// WriteMessage writes one frame, serialized against every other writer on
// this connection. All writes to Conn must go through here.
func (c *WSClient) WriteMessage(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans events out to every connected websocket client. Single
// user, so there is one flat client set.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(kind string, payload any) {
	msg, _ := json.Marshal(map[string]any{"kind": kind, "payload": payload})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}
