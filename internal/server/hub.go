// Package server is the session protocol layer: it owns live websocket
// connections, maps inbound tagged messages to registry and engine calls,
// and relays per-viewer snapshots back to the two participants of a match.
// Disconnecting is a forfeit.
package server

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/cardduel/duel-server-go/internal/game"
)

// Hub tracks connected clients by id. The registry is injected so tests
// can run isolated instances side by side.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	registry *game.Registry
	logger   *zap.Logger
}

// NewHub creates a hub backed by the given registry.
func NewHub(registry *game.Registry, logger *zap.Logger) *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		registry: registry,
		logger:   logger,
	}
}

// Run blocks until the context is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()
	h.CloseAll()
}

// CloseAll drops every connected client.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()

	for _, c := range clients {
		close(c.send)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// register adds a client and acknowledges the connection with its id.
func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()

	h.logger.Info("client connected", zap.String("client_id", c.ID))
	c.trySend(connectedMsg(c.ID))
}

// disconnect removes a client and forfeits any game it was in.
func (h *Hub) disconnect(c *Client) {
	h.mu.Lock()
	_, known := h.clients[c.ID]
	delete(h.clients, c.ID)
	h.mu.Unlock()

	if !known {
		return
	}

	h.logger.Info("client disconnected",
		zap.String("client_id", c.ID),
		zap.String("username", c.username),
	)

	if c.gameID == "" {
		return
	}

	opponentID, err := h.registry.Leave(c.gameID, c.ID)
	if err != nil {
		h.logger.Warn("leave on disconnect failed",
			zap.String("client_id", c.ID),
			zap.String("game_id", c.gameID),
			zap.Error(err),
		)
		return
	}
	if opponentID != "" {
		h.notifyForfeit(c.gameID, opponentID)
	}
}

// notifyForfeit tells the surviving player their opponent is gone and the
// match is over in their favor.
func (h *Hub) notifyForfeit(gameID, opponentID string) {
	if opp := h.clientByID(opponentID); opp != nil {
		opp.trySend(opponentLeftMsg(gameID))
		opp.trySend(gameEndedMsg(gameID, "you"))
	}
}

func (h *Hub) clientByID(id string) *Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients[id]
}

// broadcastGame sends each participant their own snapshot of the match,
// plus the terminal notice once the match has ended.
func (h *Hub) broadcastGame(gameID string) {
	g, ok := h.registry.Get(gameID)
	if !ok {
		return
	}

	for _, playerID := range g.PlayerIDs() {
		c := h.clientByID(playerID)
		if c == nil {
			continue
		}
		view, err := g.View(playerID)
		if err != nil {
			h.logger.Error("building game view failed",
				zap.String("game_id", gameID),
				zap.String("player_id", playerID),
				zap.Error(err),
			)
			continue
		}
		c.trySend(gameStateMsg(view))
		if view.State == game.StatusEnded && view.Winner != "" {
			c.trySend(gameEndedMsg(gameID, view.Winner))
		}
	}
}
