package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// AdminEvent is a console notification pushed over the admin websocket
type AdminEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	SentAt  time.Time   `json:"sent_at"`
}

// Notifier fans admin console events out to the connected websocket clients.
// Events are fire and forget: a slow client gets dropped, never blocks a request.
type Notifier struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan AdminEvent
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The console is served from a different origin than the API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewNotifier creates an empty notifier
func NewNotifier() *Notifier {
	return &Notifier{clients: make(map[*websocket.Conn]chan AdminEvent)}
}

// AdminSocketHandler upgrades the connection and streams console events until the
// client goes away
func (n *Notifier) AdminSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("failed to upgrade admin websocket", "error", err)
		return
	}

	events := make(chan AdminEvent, 16)
	n.mu.Lock()
	n.clients[conn] = events
	n.mu.Unlock()
	zap.S().Debugw("admin console connected", "remote", conn.RemoteAddr())

	// Reader goroutine only watches for the client closing the connection
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				n.remove(conn)
				return
			}
		}
	}()

	for ev := range events {
		b, err := json.Marshal(ev)
		if err != nil {
			zap.S().Errorw("failed to marshal admin event", "error", err)
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			n.remove(conn)
			return
		}
	}
}

// Broadcast queues an event for every connected console. Full buffers are skipped.
func (n *Notifier) Broadcast(eventType string, payload interface{}) {
	ev := AdminEvent{Type: eventType, Payload: payload, SentAt: time.Now()}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.clients {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (n *Notifier) remove(conn *websocket.Conn) {
	n.mu.Lock()
	ch, ok := n.clients[conn]
	if ok {
		delete(n.clients, conn)
		close(ch)
	}
	n.mu.Unlock()
	conn.Close()
}
