package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one connected mini-app session.
type WSClient struct {
	UserID int64
	Conn   *websocket.Conn
}

// RealtimeHub pushes change events to the owning user's connected sessions,
// so a save in one tab refreshes the stats in another.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[int64]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[int64]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends the payload to every session of one user. Write errors are
// ignored; a dead connection is cleaned up by its read loop.
func (h *RealtimeHub) Broadcast(userID int64, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// Run forwards bus events to the owning user's sessions until the returned
// stop function cancels the subscription.
func (h *RealtimeHub) Run(bus *EventBus) func() {
	ch, cancel := bus.Subscribe()
	go func() {
		for e := range ch {
			h.Broadcast(e.UserID, e)
		}
	}()
	return cancel
}
