// Package ws broadcasts game session events to websocket clients.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/questforge/quest-api/internal/orchestrators/game"
)

const sendBufferSize = 64

type client struct {
	conn *websocket.Conn
	send chan []byte

	// Closed by the hub on removal; the send channel itself is never
	// closed, so a publish racing a removal cannot panic
	done chan struct{}
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer func() { _ = c.conn.Close() }()
	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *client) close() {
	close(c.done)
}

// Hub fans session events out to every connected websocket client.
// Implements game.EventPublisher.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]bool
	upgrader websocket.Upgrader
}

// Ensure Hub implements the publisher port
var _ game.EventPublisher = (*Hub)(nil)

// NewHub creates a hub accepting connections from the given origins. An
// empty list allows every origin.
func NewHub(allowedOrigins []string) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &Hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(origins) == 0 {
					return true
				}
				return origins[r.Header.Get("Origin")]
			},
		},
	}
}

// HandleWS upgrades the request and keeps the connection registered
// until the peer goes away.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(conn)
	h.register(c)

	// Drain the connection; clients only listen, but reads surface
	// disconnects
	go func() {
		defer h.remove(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Publish marshals the event and fans it out. Clients that cannot keep
// up are disconnected rather than blocking the caller.
func (h *Hub) Publish(event game.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal session event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			slog.Warn("websocket client too slow, disconnecting")
			h.remove(c)
		}
	}
}

// ClientCount reports the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()
}
