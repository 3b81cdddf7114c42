package service

import (
	"encoding/json"
	"log"
	"sync"

	"cafeteria_manager/constants"

	"github.com/gofiber/contrib/websocket"
)

// Event is the JSON frame pushed over a live connection.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ClientConn is the part of *websocket.Conn the hub touches.
type ClientConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type hubClient struct {
	conn ClientConn
	role string
}

// Hub is the live connection registry: at most one connection per user id.
// Owned by main and injected into the handlers that push events, instead
// of living as package state next to the websocket handler.
type Hub struct {
	mu      sync.Mutex
	clients map[uint]hubClient
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]hubClient)}
}

// Register maps the user id to the connection. A reconnect replaces the
// previous entry silently; the old connection is left to its own read loop.
func (h *Hub) Register(userId uint, role string, conn ClientConn) {
	h.mu.Lock()
	h.clients[userId] = hubClient{conn: conn, role: role}
	h.mu.Unlock()
}

// Unregister drops the entry only while it still points at conn, so a
// close racing a reconnect cannot remove the newer connection.
func (h *Hub) Unregister(userId uint, conn ClientConn) {
	h.mu.Lock()
	if client, ok := h.clients[userId]; ok && client.conn == conn {
		delete(h.clients, userId)
	}
	h.mu.Unlock()
}

// NotifyUser sends the event to the user's connection if one is registered.
// No connection is not an error; delivery is at-most-once.
func (h *Hub) NotifyUser(userId uint, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event.Type, err)
		return
	}

	h.mu.Lock()
	client, ok := h.clients[userId]
	h.mu.Unlock()
	if !ok {
		return
	}

	if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		client.conn.Close()
		h.Unregister(userId, client.conn)
	}
}

// NotifyStaff sends the event to every staff or admin connection registered
// at call time. Connections that fail to take the write are dropped.
func (h *Hub) NotifyStaff(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event.Type, err)
		return
	}

	h.mu.Lock()
	targets := make(map[uint]hubClient, len(h.clients))
	for userId, client := range h.clients {
		if client.role == constants.ROLE_STAFF || client.role == constants.ROLE_ADMIN {
			targets[userId] = client
		}
	}
	h.mu.Unlock()

	for userId, client := range targets {
		if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			client.conn.Close()
			h.Unregister(userId, client.conn)
		}
	}
}

// ConnectionCount reports how many connections are currently registered.
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
