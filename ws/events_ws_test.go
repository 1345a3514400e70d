package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*EventHub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewEventHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/events", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
}

func dial(t *testing.T, hub *EventHub, url string, want int) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return hub.Count() == want }, time.Second, 10*time.Millisecond)
	return conn
}

func TestEventHub_Broadcast(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, hub, url, 1)

	hub.Notify("pdv.order.finalized", map[string]any{"orderId": 9})

	var ev Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "pdv.order.finalized", ev.Topic)
	assert.Equal(t, map[string]any{"orderId": float64(9)}, ev.Payload)
}

func TestEventHub_TopicFilter(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, hub, url+"?topics=pdv.table", 1)

	hub.Notify("pdv.customer.changed", 1)
	hub.Notify("pdv.table.paid", 2)

	var ev Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "pdv.table.paid", ev.Topic)
}

func TestEventHub_Unregister(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, hub, url, 1)
	conn.Close()
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}
