package ws

import (
	"log/slog"
	"sync"

	"brainhub/internal/domain"
)

// Leaderboard is the part of app.Leaderboard the feed needs
type Leaderboard interface {
	GetTopPlayers(board domain.Board, limit int, game string) []domain.ScoreEntry
	Subscribe(fn func(*domain.ScoreEvent)) func()
}

// Hub tracks connected clients and pushes leaderboard changes to them
type Hub struct {
	leaderboard Leaderboard
	clients     map[string]*Client
	mu          sync.RWMutex
	unsubscribe func()
	logger      *slog.Logger
}

// NewHub creates a hub subscribed to leaderboard
func NewHub(leaderboard Leaderboard, logger *slog.Logger) *Hub {
	h := &Hub{
		leaderboard: leaderboard,
		clients:     make(map[string]*Client),
		logger:      logger,
	}
	h.unsubscribe = leaderboard.Subscribe(h.handleScoreEvent)
	return h
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.GetID()] = c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, id)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends message to every connected client. Clients that cannot
// keep up are disconnected and unregister themselves.
func (h *Hub) Broadcast(message *ServerMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, c := range h.clients {
		if err := c.Send(message); err != nil {
			h.logger.Warn("dropping feed client", "clientID", id, "error", err)
		}
	}
}

// Close detaches the hub from the leaderboard and closes all clients
func (h *Hub) Close() {
	h.unsubscribe()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.clients {
		c.Close()
	}
	h.clients = make(map[string]*Client)
}

func (h *Hub) handleScoreEvent(event *domain.ScoreEvent) {
	h.Broadcast(NewServerMessage(MsgScoreAdded, &ScoreAddedPayload{
		Entry:  event.Entry,
		Rank:   event.Rank,
		Ranked: event.Ranked,
		Board:  domain.BoardDaily,
		Top:    event.Top,
	}))
}
