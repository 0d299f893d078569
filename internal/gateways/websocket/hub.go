package websocket

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"sync/atomic"

	"faden/internal/utils"

	"go.uber.org/zap"
)

type Client struct {
	hub   *Hub
	conn  ClientConn
	send  chan []byte
	ID    string
	Board string
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// Hub pushes domain events to connected websocket clients. A client with a
// board filter only receives events of that board.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger.Sugar(),
	}
}

func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Run serves registrations and broadcasts events until ctx is cancelled or
// the events channel is closed.
func (h *Hub) Run(ctx context.Context, events <-chan utils.Event) {
	h.logger.Info("WebSocket Hub started")
	defer func() {
		close(h.done)
		for client := range h.clients {
			h.drop(client)
		}
		h.logger.Info("WebSocket Hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = true
			h.count.Add(1)
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"board", client.Board,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event, ok := <-events:
			if !ok {
				return
			}
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event utils.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorw("Failed to encode event", "event", event.Event, "error", err)
		return
	}

	for client := range h.clients {
		if client.Board != "" && client.Board != event.Board {
			continue
		}
		select {
		case client.send <- payload:
		default:
			h.logger.Warnw("Client too slow, disconnecting", "client_id", client.ID)
			h.drop(client)
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.count.Add(-1)
}

func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
