package websocket

import (
	"log/slog"
	"net/http"
	"sync"

	"reelkit-api/pkg/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Conn is the transport surface the hub needs from a subscriber. The real
// implementation wraps a gorilla connection; tests inject fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub routes preview events between clients editing the same project. It
// holds no history: an event is fanned out to the subscribers registered at
// broadcast time and then forgotten.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[Conn]bool
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]map[Conn]bool)}
}

// Connect registers conn as a subscriber of the project. Callers must have
// completed the transport handshake first.
func (h *Hub) Connect(projectID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subscribers[projectID]
	if !ok {
		set = make(map[Conn]bool)
		h.subscribers[projectID] = set
	}
	set[conn] = true
}

// Disconnect removes conn from the project's subscriber set. Safe to call
// any number of times, including for connections that were never registered.
func (h *Hub) Disconnect(projectID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subscribers[projectID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(h.subscribers, projectID)
	}
}

// Broadcast delivers event to every current subscriber of the project.
// Iteration runs over a snapshot taken up front, so concurrent connects and
// disconnects never race the fan-out. A subscriber whose send fails is
// disconnected and closed; delivery to the rest continues.
func (h *Hub) Broadcast(projectID string, event events.Envelope) {
	h.mu.RLock()
	set := h.subscribers[projectID]
	snapshot := make([]Conn, 0, len(set))
	for conn := range set {
		snapshot = append(snapshot, conn)
	}
	h.mu.RUnlock()

	for _, conn := range snapshot {
		if err := conn.WriteJSON(event); err != nil {
			slog.Debug("preview send failed, dropping subscriber", "project", projectID, "err", err)
			h.Disconnect(projectID, conn)
			_ = conn.Close()
		}
	}
}

// SubscriberCount returns the number of live subscribers for a project.
func (h *Hub) SubscriberCount(projectID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[projectID])
}

// Shutdown closes every open connection and clears all subscriber sets.
// Called by the service host on clean shutdown.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.subscribers {
		for conn := range set {
			_ = conn.Close()
		}
	}
	h.subscribers = make(map[string]map[Conn]bool)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client adapts a gorilla connection to the hub's Conn interface. Broadcasts
// from different senders may target the same socket concurrently and gorilla
// forbids concurrent writers, so writes are serialized here.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) Close() error {
	return c.conn.Close()
}

// ServeWS upgrades the request and runs the per-connection read loop: every
// inbound JSON message is wrapped in a timestamped envelope and broadcast to
// all subscribers of the project, the sender included. The loop exits on the
// first read error and always deregisters the connection exactly once.
func ServeWS(h *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("projectId")
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "project", projectID, "err", err)
			return
		}

		cl := &client{conn: conn}
		h.Connect(projectID, cl)
		defer func() {
			h.Disconnect(projectID, cl)
			_ = conn.Close()
		}()

		for {
			var payload interface{}
			if err := conn.ReadJSON(&payload); err != nil {
				return
			}
			h.Broadcast(projectID, events.NewPreviewEvent(payload))
		}
	}
}
