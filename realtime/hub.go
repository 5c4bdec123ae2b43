package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// Event is the wire form of a live update: a named event plus its
// payload, e.g. {"event":"productCountUpdate","data":12}.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans live events out to every connected websocket client.
// Delivery is best-effort: a failed write drops the client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		log:     log,
	}
}

// Handler upgrades the request and parks the connection in a read loop
// until the client goes away. Clients never send meaningful data; the
// read loop only detects disconnects.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		h.register(c)
		defer h.unregister(c)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	})
}

func (h *Hub) register(c *websocket.Conn) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	h.log.Info("live client connected", zap.Int("clients", h.ClientCount()))
}

func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.Close()
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Emit broadcasts an event to all connected clients.
func (h *Hub) Emit(event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		h.log.Error("event marshal failed", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			c.Close()
			delete(h.clients, c)
		}
	}
}
