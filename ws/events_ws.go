package ws

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventHub pushes state-change events to every connected screen.
type EventHub struct {
	clients    map[*websocket.Conn]*client
	broadcast  chan Event
	register   chan *client
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// client is one websocket connection, optionally filtered by topic prefix.
type client struct {
	conn     *websocket.Conn
	prefixes []string
}

func (c *client) wants(topic string) bool {
	if len(c.prefixes) == 0 {
		return true
	}
	for _, p := range c.prefixes {
		if strings.HasPrefix(topic, p) {
			return true
		}
	}
	return false
}

type Event struct {
	Topic   string    `json:"topic"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[*websocket.Conn]*client),
		broadcast:  make(chan Event, 64),
		register:   make(chan *client),
		unregister: make(chan *websocket.Conn),
	}
}

// Run owns the client set; start it once in its own goroutine.
func (h *EventHub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.conn] = c
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
			for conn, c := range h.clients {
				if !c.wants(ev.Topic) {
					continue
				}
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify queues an event; it never blocks the caller.
func (h *EventHub) Notify(topic string, payload any) {
	select {
	case h.broadcast <- Event{Topic: topic, At: time.Now().UTC(), Payload: payload}:
	default:
		log.Printf("ws hub busy, dropping %s", topic)
	}
}

func (h *EventHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/events?topics=pdv.table,pdv.customer
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	var prefixes []string
	for _, p := range strings.Split(c.Query("topics"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- &client{conn: conn, prefixes: prefixes}
	go h.drain(conn)
}

// drain reads until the peer goes away; screens only listen.
func (h *EventHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
