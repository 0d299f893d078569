package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"faden/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) (*Hub, *utils.EventBus, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(zap.NewNop())
	bus := utils.NewEventBus(16)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx, bus.SubscribeCh())

	r := gin.New()
	RegisterRoutes(r, hub)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, bus, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) utils.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event utils.Event
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHub_BroadcastsToAllClients(t *testing.T) {
	hub, bus, srv := startHub(t)

	first := dial(t, srv, "")
	second := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	bus.Publish(utils.Event{Event: utils.EventBoardCreated, Board: "test"})

	assert.Equal(t, utils.EventBoardCreated, readEvent(t, first).Event)
	assert.Equal(t, utils.EventBoardCreated, readEvent(t, second).Event)
}

func TestHub_BoardFilter(t *testing.T) {
	hub, bus, srv := startHub(t)

	conn := dial(t, srv, "?board=General")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	bus.Publish(utils.Event{Event: utils.EventPostCreated, Board: "other"})
	bus.Publish(utils.Event{Event: utils.EventPostCreated, Board: "general", Data: "hello"})

	got := readEvent(t, conn)
	assert.Equal(t, "general", got.Board)
	assert.Equal(t, "hello", got.Data)
}

func TestHub_ClientDisconnect(t *testing.T) {
	hub, _, srv := startHub(t)

	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
