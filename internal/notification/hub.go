package notification

import (
	"net/http"
	"sync"

	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// Bidders connect from the marketplace frontend on another origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub is the push leg of the gateway: a registry of websocket
// connections keyed by bidder email. Writes happen only from the
// outbox worker, so no per-connection write lock is needed.
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]*websocket.Conn
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string][]*websocket.Conn)}
}

// ServeWS upgrades GET /ws?email=... to a websocket and registers the
// connection under that email until the peer disconnects.
func (h *Hub) ServeWS(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{"email": email, "error": err.Error()})
		return
	}

	h.register(email, conn)
	go h.reader(email, conn)
}

func (h *Hub) register(email string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[email] = append(h.conns[email], conn)
}

func (h *Hub) unregister(email string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.conns[email]
	for i, c := range conns {
		if c == conn {
			h.conns[email] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.conns[email]) == 0 {
		delete(h.conns, email)
	}
}

// reader drains inbound frames until the peer closes, then unregisters.
func (h *Hub) reader(email string, conn *websocket.Conn) {
	defer func() {
		h.unregister(email, conn)
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Push sends a JSON payload to every connection registered for email.
// Failed connections are dropped.
func (h *Hub) Push(email string, payload any) {
	h.mu.RLock()
	conns := append([]*websocket.Conn(nil), h.conns[email]...)
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			utils.Warn("websocket push failed", map[string]any{"email": email, "error": err.Error()})
			h.unregister(email, conn)
			conn.Close()
		}
	}
}

// Close tears down every registered connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.conns {
		for _, conn := range conns {
			conn.Close()
		}
	}
	h.conns = make(map[string][]*websocket.Conn)
}
