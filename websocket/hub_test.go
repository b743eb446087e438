package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func startHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	return conn
}

func clientCount(h *Hub) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for clientCount(h) != want {
		if time.Now().After(deadline) {
			t.Fatalf("hub stuck at %d clients, want %d", clientCount(h), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastDeliversEvent(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)

	conn := dial(t, srv)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Broadcast(Event{Action: "created", ResourceType: "delivery_status", ResourceID: 7})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var event Event
	if err := json.Unmarshal(msg, &event); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if event.Action != "created" || event.ResourceType != "delivery_status" || event.ResourceID != 7 {
		t.Fatalf("event mangled: %+v", event)
	}
	if event.OccurredAt.IsZero() {
		t.Fatal("occurred_at not stamped")
	}
}

func TestDeadConnectionIsReclaimed(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()

	// Writes to the dead peer fail; the writer must drop the entry
	// rather than leave it in the map.
	deadline := time.Now().Add(2 * time.Second)
	for clientCount(hub) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("dead connection still registered, %d clients", clientCount(hub))
		}
		hub.Broadcast(Event{Action: "updated", ResourceType: "task", ResourceID: 1})
		time.Sleep(10 * time.Millisecond)
	}
}
