package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cardduel/duel-server-go/internal/catalog"
)

// Summary describes an open match in the lobby list.
type Summary struct {
	ID     string `json:"id"`
	Host   string `json:"host"`
	Status string `json:"status"`
}

// Option configures a Registry.
type Option func(*Registry)

// WithRandFactory overrides the per-match random source, making shuffles
// and the first-turn coin flip reproducible under test.
func WithRandFactory(f func() *rand.Rand) Option {
	return func(r *Registry) {
		r.newRand = f
	}
}

// Registry owns the collection of live matches and a reverse index from
// player id to match ids. Its lock covers only the maps; per-match
// serialization is the match's own mutex, so lobby traffic never waits on
// in-progress games.
type Registry struct {
	mu          sync.RWMutex
	games       map[string]*Game
	playerGames map[string]map[string]bool

	catalog *catalog.Catalog
	logger  *zap.Logger
	newRand func() *rand.Rand
}

// NewRegistry creates a registry backed by the given catalog. The catalog
// must hold at least a full deck of templates.
func NewRegistry(cat *catalog.Catalog, logger *zap.Logger, opts ...Option) (*Registry, error) {
	if cat.Size() < DeckSize {
		return nil, fmt.Errorf("catalog has %d cards, need at least %d", cat.Size(), DeckSize)
	}

	r := &Registry{
		games:       make(map[string]*Game),
		playerGames: make(map[string]map[string]bool),
		catalog:     cat,
		logger:      logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// CreateGame allocates a new waiting match with the host as sole player
// and returns its id.
func (r *Registry) CreateGame(hostID, hostUsername string) string {
	g := &Game{
		ID:           uuid.New().String(),
		HostID:       hostID,
		HostUsername: hostUsername,
		Status:       StatusWaiting,
		Players:      []*Player{newPlayer(hostID, hostUsername)},
		CreatedAt:    time.Now(),
		catalog:      r.catalog,
		rng:          r.newRand(),
	}

	r.mu.Lock()
	r.games[g.ID] = g
	r.indexPlayer(hostID, g.ID)
	r.mu.Unlock()

	r.logger.Info("game created",
		zap.String("game_id", g.ID),
		zap.String("host_id", hostID),
		zap.String("host", hostUsername),
	)

	return g.ID
}

// Get returns the match with the given id.
func (r *Registry) Get(gameID string) (*Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[gameID]
	return g, ok
}

// AvailableGames lists all matches still waiting for an opponent.
func (r *Registry) AvailableGames() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	available := make([]Summary, 0)
	for _, g := range r.games {
		g.mu.Lock()
		if g.Status == StatusWaiting {
			available = append(available, Summary{
				ID:     g.ID,
				Host:   g.HostUsername,
				Status: string(g.Status),
			})
		}
		g.mu.Unlock()
	}
	return available
}

// GamesForPlayer returns the ids of matches the player participates in.
func (r *Registry) GamesForPlayer(playerID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.playerGames[playerID]))
	for id := range r.playerGames[playerID] {
		ids = append(ids, id)
	}
	return ids
}

// Join adds a second player to a waiting match.
func (r *Registry) Join(gameID, playerID, username string) error {
	g, ok := r.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}

	g.mu.Lock()
	switch {
	case g.Status != StatusWaiting:
		g.mu.Unlock()
		return ErrGameNotAvailable
	case len(g.Players) >= 2:
		g.mu.Unlock()
		return ErrGameFull
	case g.player(playerID) != nil:
		g.mu.Unlock()
		return ErrAlreadyJoined
	}
	g.Players = append(g.Players, newPlayer(playerID, username))
	g.mu.Unlock()

	r.mu.Lock()
	r.indexPlayer(playerID, gameID)
	r.mu.Unlock()

	r.logger.Info("player joined game",
		zap.String("game_id", gameID),
		zap.String("player_id", playerID),
		zap.String("username", username),
	)

	return nil
}

// Leave removes a player from a match. Leaving a two-player game in
// progress is a forfeit: the match ends with the remaining player as
// winner, and their id is returned so the caller can notify them. A match
// left while waiting, or left with no players, is discarded.
func (r *Registry) Leave(gameID, playerID string) (opponentID string, err error) {
	g, ok := r.Get(gameID)
	if !ok {
		return "", ErrGameNotFound
	}

	g.mu.Lock()
	leaver := g.player(playerID)
	if leaver == nil {
		g.mu.Unlock()
		return "", ErrPlayerNotFound
	}

	if g.Status == StatusPlaying && len(g.Players) == 2 {
		opp := g.opponent(playerID)
		opponentID = opp.ID
		g.endWith(opp)
	}

	discard := g.Status == StatusWaiting
	if !discard {
		for i, p := range g.Players {
			if p.ID == playerID {
				g.Players = append(g.Players[:i], g.Players[i+1:]...)
				break
			}
		}
		discard = len(g.Players) == 0
	}
	g.mu.Unlock()

	r.mu.Lock()
	r.unindexPlayer(playerID, gameID)
	if discard {
		delete(r.games, gameID)
	}
	r.mu.Unlock()

	r.logger.Info("player left game",
		zap.String("game_id", gameID),
		zap.String("player_id", playerID),
		zap.Bool("discarded", discard),
		zap.String("forfeit_winner", opponentID),
	)

	return opponentID, nil
}

// StartGame starts the match with the given id.
func (r *Registry) StartGame(gameID string) error {
	g, ok := r.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}
	return g.Start()
}

// PlayCard plays a card in the match with the given id.
func (r *Registry) PlayCard(gameID, playerID string, cardID int, pos Position) error {
	g, ok := r.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}
	return g.PlayCard(playerID, cardID, pos)
}

// DrawCard draws a card in the match with the given id.
func (r *Registry) DrawCard(gameID, playerID string) error {
	g, ok := r.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}
	return g.DrawCard(playerID)
}

// AttackCard resolves card combat in the match with the given id.
func (r *Registry) AttackCard(gameID, playerID string, attackingCardID, targetCardID int) error {
	g, ok := r.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}
	return g.AttackCard(playerID, attackingCardID, targetCardID)
}

// AttackPlayer attacks the opponent directly in the match with the given id.
func (r *Registry) AttackPlayer(gameID, playerID string, attackingCardID int) error {
	g, ok := r.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}
	return g.AttackPlayer(playerID, attackingCardID)
}

// EndTurn ends the current turn in the match with the given id.
func (r *Registry) EndTurn(gameID, playerID string) error {
	g, ok := r.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}
	return g.EndTurn(playerID)
}

// View builds the per-viewer snapshot for the match with the given id.
func (r *Registry) View(gameID, viewerID string) (*GameView, error) {
	g, ok := r.Get(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.View(viewerID)
}

func (r *Registry) indexPlayer(playerID, gameID string) {
	if r.playerGames[playerID] == nil {
		r.playerGames[playerID] = make(map[string]bool)
	}
	r.playerGames[playerID][gameID] = true
}

func (r *Registry) unindexPlayer(playerID, gameID string) {
	delete(r.playerGames[playerID], gameID)
	if len(r.playerGames[playerID]) == 0 {
		delete(r.playerGames, playerID)
	}
}
