package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is pushed to connected dashboard clients whenever a CRM entity
// changes, so list views know to refetch.
type Event struct {
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   uint      `json:"resource_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Hub fans entity events out to websocket subscribers. A slow subscriber
// is dropped rather than allowed to back up the rest.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]chan []byte)}
}

func (h *Hub) Register(conn *websocket.Conn) {
	writeChan := make(chan []byte, 100)

	h.mu.Lock()
	h.clients[conn] = writeChan
	h.mu.Unlock()

	go func() {
		defer conn.Close()
		// Reclaim the entry on a write error too, not only when the
		// channel is closed from the other side.
		defer h.Unregister(conn)
		for msg := range writeChan {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reader loop only detects disconnects; clients do not send.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.Unregister(conn)
				return
			}
		}
	}()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if writeChan, ok := h.clients[conn]; ok {
		close(writeChan)
		delete(h.clients, conn)
	}
}

func (h *Hub) Broadcast(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("hub: marshal event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, writeChan := range h.clients {
		select {
		case writeChan <- msg:
		default:
			close(writeChan)
			delete(h.clients, conn)
		}
	}
}
