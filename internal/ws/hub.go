package ws

import (
	"encoding/json"
	"sync"

	"tables_webapp/internal/domain"
	"tables_webapp/internal/logger"
)

// Hub fans accepted scores out to everyone watching the live leaderboard.
// Clients are read-mostly spectators; there is no per-client state beyond the
// send queue.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// ClientCount returns the number of connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

type scoreEvent struct {
	Type  string        `json:"type"`
	Score *domain.Score `json:"score"`
}

// BroadcastScore pushes an accepted leaderboard entry to all spectators.
// Slow clients are dropped rather than allowed to block the submission path.
func (h *Hub) BroadcastScore(s *domain.Score) {
	msg, err := json.Marshal(scoreEvent{Type: "score", Score: s})
	if err != nil {
		logger.Error("failed to marshal score event", "error", err)
		return
	}

	h.mu.RLock()
	var slow []*Client
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.Warn("dropping slow leaderboard spectator")
		h.unregister(c)
	}
}
