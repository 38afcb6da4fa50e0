package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vasandree/hits-docker-practice/services"
)

// OrderHub pushes order lifecycle events to connected operators. There is
// one feed; every subscriber sees every event.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.Mutex
	log        *slog.Logger
}

func NewOrderHub(log *slog.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		log:        log,
	}
}

// PublishOrderEvent implements services.OrderEventPublisher. Events are
// dropped when the hub is saturated; the feed is best-effort.
func (h *OrderHub) PublishOrderEvent(ev services.OrderEvent) {
	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn("order event dropped", "orderId", ev.ID)
	}
}

// Run dispatches events until ctx is cancelled.
func (h *OrderHub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
			}
			h.clients = make(map[*websocket.Conn]bool)
			h.mu.Unlock()
			return ctx.Err()

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					h.log.Warn("ws write error", "err", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (admin-guarded by the route group)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", "err", err)
		return
	}

	if !h.addClient(conn) {
		conn.Close()
		return
	}
	go h.drain(conn)
}

// addClient hands the connection to the dispatch loop. It reports false
// once the hub has stopped, so late upgrades do not block.
func (h *OrderHub) addClient(conn *websocket.Conn) bool {
	select {
	case h.register <- conn:
		return true
	case <-h.done:
		return false
	}
}

// drain keeps the connection's read side alive so close frames are
// processed; subscribers never send application data.
func (h *OrderHub) drain(conn *websocket.Conn) {
	defer func() {
		select {
		case h.unregister <- conn:
		case <-h.done:
			conn.Close()
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
