package server

import (
	"go.uber.org/zap"
)

// handleMessage dispatches one inbound tagged message. It runs on the
// client's read loop, so messages from one client are handled strictly in
// arrival order; cross-client interleaving is serialized by the engine's
// per-match lock.
func (h *Hub) handleMessage(c *Client, msg ClientMessage) {
	switch msg.Type {
	case msgSetUsername:
		h.handleSetUsername(c, msg)
	case msgCreateGame:
		h.handleCreateGame(c, msg)
	case msgJoinGame:
		h.handleJoinGame(c, msg)
	case msgLeaveGame:
		h.handleLeaveGame(c, msg)
	case msgGetGames:
		c.trySend(gamesListMsg(h.registry.AvailableGames()))
	case msgPlayCard:
		h.mutate(c, msg.GameID, func(gameID string) error {
			return h.registry.PlayCard(gameID, c.ID, msg.CardID, msg.Position)
		})
	case msgDrawCard:
		h.mutate(c, msg.GameID, func(gameID string) error {
			return h.registry.DrawCard(gameID, c.ID)
		})
	case msgEndTurn:
		h.mutate(c, msg.GameID, func(gameID string) error {
			return h.registry.EndTurn(gameID, c.ID)
		})
	case msgAttack:
		h.mutate(c, msg.GameID, func(gameID string) error {
			return h.registry.AttackCard(gameID, c.ID, msg.AttackingCardID, msg.TargetCardID)
		})
	case msgAttackPlayer:
		h.mutate(c, msg.GameID, func(gameID string) error {
			return h.registry.AttackPlayer(gameID, c.ID, msg.AttackingCardID)
		})
	case msgGameMove:
		// Accepted passthrough; the engine has no generic moves yet.
		h.logger.Debug("game_move received",
			zap.String("client_id", c.ID),
			zap.String("game_id", msg.GameID),
		)
	default:
		h.logger.Warn("unknown message type",
			zap.String("client_id", c.ID),
			zap.String("type", msg.Type),
		)
		c.trySend(errorMsg("unknown message type"))
	}
}

func (h *Hub) handleSetUsername(c *Client, msg ClientMessage) {
	if msg.Username == "" {
		c.trySend(errorMsg("username required"))
		return
	}
	c.username = msg.Username
	c.trySend(usernameSetMsg(c.username))
}

func (h *Hub) handleCreateGame(c *Client, msg ClientMessage) {
	if msg.Username != "" {
		c.username = msg.Username
	}
	if c.username == "" {
		c.trySend(errorMsg("username required"))
		return
	}
	if c.gameID != "" {
		c.trySend(errorMsg("already in a game"))
		return
	}

	c.gameID = h.registry.CreateGame(c.ID, c.username)
	c.trySend(gameCreatedMsg(c.gameID))
}

// handleJoinGame fills the second seat, notifies the host, and starts the
// match right away: both players receive their first snapshots.
func (h *Hub) handleJoinGame(c *Client, msg ClientMessage) {
	if msg.Username != "" {
		c.username = msg.Username
	}
	if c.username == "" {
		c.trySend(errorMsg("username required"))
		return
	}
	if c.gameID != "" {
		c.trySend(errorMsg("already in a game"))
		return
	}

	if err := h.registry.Join(msg.GameID, c.ID, c.username); err != nil {
		c.trySend(errorMsg(err.Error()))
		return
	}
	c.gameID = msg.GameID

	g, ok := h.registry.Get(msg.GameID)
	if !ok {
		c.trySend(errorMsg("game not found"))
		return
	}

	c.trySend(gameJoinedMsg(g.ID, g.HostUsername, false))
	if host := h.clientByID(g.HostID); host != nil {
		host.trySend(opponentJoinedMsg(g.ID, c.username))
	}

	if err := g.Start(); err != nil {
		h.logger.Error("starting game failed",
			zap.String("game_id", g.ID),
			zap.Error(err),
		)
		c.trySend(errorMsg(err.Error()))
		return
	}

	h.broadcastGame(g.ID)
}

func (h *Hub) handleLeaveGame(c *Client, msg ClientMessage) {
	gameID := msg.GameID
	if gameID == "" {
		gameID = c.gameID
	}
	if gameID == "" {
		c.trySend(errorMsg("not in a game"))
		return
	}

	opponentID, err := h.registry.Leave(gameID, c.ID)
	if err != nil {
		c.trySend(errorMsg(err.Error()))
		return
	}
	if c.gameID == gameID {
		c.gameID = ""
	}

	c.trySend(gameLeftMsg(gameID))
	if opponentID != "" {
		h.notifyForfeit(gameID, opponentID)
	}
}

// mutate runs one engine call and, on success, fans the refreshed
// per-viewer snapshots out to both participants. A rejected action is
// relayed to the requester only; the opponent's view is untouched.
func (h *Hub) mutate(c *Client, gameID string, op func(gameID string) error) {
	if gameID == "" {
		gameID = c.gameID
	}
	if gameID == "" {
		c.trySend(errorMsg("not in a game"))
		return
	}

	if err := op(gameID); err != nil {
		c.trySend(errorMsg(err.Error()))
		return
	}

	h.broadcastGame(gameID)
}
