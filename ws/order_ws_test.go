package ws

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vasandree/hits-docker-practice/services"
)

func newHubServer(t *testing.T) (*OrderHub, string, context.CancelFunc, chan error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewOrderHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- hub.Run(ctx) }()

	r := gin.New()
	r.GET("/ws/orders", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	t.Cleanup(cancel)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
	return hub, wsURL, cancel, runErr
}

func (h *OrderHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestOrderHub_BroadcastsToSubscriber(t *testing.T) {
	hub, wsURL, _, _ := newHubServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitFor(t, "subscriber registration", func() bool { return hub.clientCount() == 1 })

	hub.PublishOrderEvent(services.OrderEvent{ID: 42, Status: "New"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev services.OrderEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.ID != 42 || ev.Status != "New" {
		t.Errorf("event = %+v, want id 42 status New", ev)
	}

	conn.Close()
	waitFor(t, "subscriber removal", func() bool { return hub.clientCount() == 0 })
}

func TestOrderHub_RejectsConnectionsAfterShutdown(t *testing.T) {
	hub, wsURL, cancel, runErr := newHubServer(t)

	cancel()
	select {
	case err := <-runErr:
		if err != context.Canceled {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	// the upgrade still succeeds at the HTTP layer, but the stopped hub
	// must close the connection instead of blocking the handler
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("read succeeded, want closed connection")
	}
	if hub.clientCount() != 0 {
		t.Errorf("clientCount = %d, want 0 after shutdown", hub.clientCount())
	}
}
