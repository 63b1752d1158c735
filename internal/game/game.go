// Package game implements the authoritative duel engine: a registry of live
// matches and the per-match turn state machine. All match state lives in
// memory; a match is serialized by its own mutex and the registry keeps a
// separate, narrower lock for its id maps so independent matches never
// block each other.
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cardduel/duel-server-go/internal/catalog"
)

// Rule constants. Mana regenerates as min(turnNumber, MaxMana); drawing
// from an empty deck costs FatigueDamage health instead of a card.
const (
	StartingHealth  = 30
	DeckSize        = 30
	OpeningHandSize = 3
	MaxHandSize     = 10
	MaxBoardSize    = 7
	MaxMana         = 10
	FatigueDamage   = 1
)

// Status is the lifecycle state of a match. Ended is terminal.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

// Position is the client-supplied board placement of a played card. The
// engine stores it verbatim for the renderer; it has no rules meaning.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoardCard is a card in play. Card is a mutable copy of the template:
// combat damage accrues on Defense until it drops to zero or below, at
// which point the card is removed in the same operation.
type BoardCard struct {
	Card      catalog.Card `json:"card"`
	Position  Position     `json:"position"`
	CanAttack bool         `json:"canAttack"`
}

// Player is one side of a match.
type Player struct {
	ID       string
	Username string
	Health   int
	Mana     int
	Deck     []catalog.Card // front of the slice is the next draw
	Hand     []catalog.Card
	Board    []*BoardCard
}

// Game is a single match. Every mutating operation takes mu for its whole
// duration; operations are in-memory only, so the lock is held briefly.
type Game struct {
	mu sync.Mutex

	ID           string
	HostID       string
	HostUsername string
	Status       Status
	Players      []*Player
	CurrentTurn  string // player id of the turn holder while playing
	TurnNumber   int
	CreatedAt    time.Time
	Winner       string // player id, empty until the match ends

	catalog *catalog.Catalog
	rng     *rand.Rand
}

// player returns the participant with the given id.
func (g *Game) player(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// opponent returns the participant other than the given id.
func (g *Game) opponent(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID != playerID {
			return p
		}
	}
	return nil
}

// newPlayer creates a participant with starting health and no cards.
func newPlayer(id, username string) *Player {
	return &Player{
		ID:       id,
		Username: username,
		Health:   StartingHealth,
		Deck:     []catalog.Card{},
		Hand:     []catalog.Card{},
		Board:    []*BoardCard{},
	}
}

// Start transitions a full match from waiting to playing: picks the first
// turn holder with a coin flip, deals each player an independently shuffled
// deck, sets starting mana, and draws opening hands alternating between the
// turn holder and the opponent.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusWaiting {
		return ErrGameNotAvailable
	}
	if len(g.Players) != 2 {
		return ErrInsufficientPlayers
	}

	g.Status = StatusPlaying
	g.TurnNumber = 1

	first := g.Players[g.rng.Intn(len(g.Players))]
	second := g.opponent(first.ID)
	g.CurrentTurn = first.ID

	for _, p := range g.Players {
		p.Deck = g.buildDeck()
		p.Mana = 1
	}

	for i := 0; i < OpeningHandSize; i++ {
		g.drawInto(first)
		g.drawInto(second)
	}

	return nil
}

// buildDeck returns DeckSize shuffled template copies. The catalog must
// hold at least DeckSize templates, checked at registry construction.
func (g *Game) buildDeck() []catalog.Card {
	cards := g.catalog.Cards()
	g.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards[:DeckSize]
}

// PlayCard moves a card from the player's hand onto their board, paying its
// mana cost. A just-played card cannot attack until the owner's next turn.
func (g *Game) PlayCard(playerID string, cardID int, pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return ErrGameNotInProgress
	}
	if g.CurrentTurn != playerID {
		return ErrNotYourTurn
	}
	p := g.player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}

	idx := -1
	for i, c := range p.Hand {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCardNotFound
	}
	card := p.Hand[idx]
	if card.Cost > p.Mana {
		return ErrInsufficientMana
	}
	if len(p.Board) >= MaxBoardSize {
		return ErrBoardFull
	}

	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	p.Board = append(p.Board, &BoardCard{Card: card, Position: pos, CanAttack: false})
	p.Mana -= card.Cost

	return nil
}

// DrawCard draws the front card of the player's deck into their hand. An
// empty deck is not an error: the player takes fatigue damage instead,
// which may end the match in the opponent's favor.
func (g *Game) DrawCard(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return ErrGameNotInProgress
	}
	if g.CurrentTurn != playerID {
		return ErrNotYourTurn
	}
	p := g.player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if len(p.Hand) >= MaxHandSize {
		return ErrHandFull
	}

	g.drawInto(p)
	return nil
}

// drawInto applies the draw rule to one player: fatigue when the deck is
// empty, otherwise deck front to hand. A draw into a full hand is skipped
// so the hand cap holds across turn-change draws as well.
func (g *Game) drawInto(p *Player) {
	if len(p.Deck) == 0 {
		p.Health -= FatigueDamage
		if p.Health <= 0 {
			g.endWith(g.opponent(p.ID))
		}
		return
	}
	if len(p.Hand) >= MaxHandSize {
		return
	}
	p.Hand = append(p.Hand, p.Deck[0])
	p.Deck = p.Deck[1:]
}

// endWith marks the match ended with the given winner.
func (g *Game) endWith(winner *Player) {
	g.Status = StatusEnded
	if winner != nil {
		g.Winner = winner.ID
	}
}

// AttackCard resolves combat between one card on each board. Damage is
// simultaneous and bidirectional: each card's defense drops by the other's
// attack in the same step, and either card is removed when its defense
// reaches zero or below. A surviving attacker cannot attack again this turn.
func (g *Game) AttackCard(playerID string, attackingCardID, targetCardID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return ErrGameNotInProgress
	}
	if g.CurrentTurn != playerID {
		return ErrNotYourTurn
	}
	attacker := g.player(playerID)
	if attacker == nil {
		return ErrPlayerNotFound
	}
	defender := g.opponent(playerID)
	if defender == nil {
		return ErrOpponentNotFound
	}

	atkIdx := boardIndex(attacker.Board, attackingCardID)
	if atkIdx < 0 {
		return ErrCardNotFound
	}
	tgtIdx := boardIndex(defender.Board, targetCardID)
	if tgtIdx < 0 {
		return ErrCardNotFound
	}

	atk := attacker.Board[atkIdx]
	tgt := defender.Board[tgtIdx]
	if !atk.CanAttack {
		return ErrCannotAttack
	}

	tgt.Card.Defense -= atk.Card.Attack
	atk.Card.Defense -= tgt.Card.Attack

	if tgt.Card.Defense <= 0 {
		defender.Board = append(defender.Board[:tgtIdx], defender.Board[tgtIdx+1:]...)
	}
	if atk.Card.Defense <= 0 {
		attacker.Board = append(attacker.Board[:atkIdx], attacker.Board[atkIdx+1:]...)
	} else {
		atk.CanAttack = false
	}

	return nil
}

// AttackPlayer deals a card's attack value directly to the opponent's
// health, ending the match if it drops to zero or below.
func (g *Game) AttackPlayer(playerID string, attackingCardID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return ErrGameNotInProgress
	}
	if g.CurrentTurn != playerID {
		return ErrNotYourTurn
	}
	attacker := g.player(playerID)
	if attacker == nil {
		return ErrPlayerNotFound
	}
	defender := g.opponent(playerID)
	if defender == nil {
		return ErrOpponentNotFound
	}

	atkIdx := boardIndex(attacker.Board, attackingCardID)
	if atkIdx < 0 {
		return ErrCardNotFound
	}
	atk := attacker.Board[atkIdx]
	if !atk.CanAttack {
		return ErrCannotAttack
	}

	defender.Health -= atk.Card.Attack
	atk.CanAttack = false

	if defender.Health <= 0 {
		g.endWith(attacker)
	}

	return nil
}

// EndTurn hands the turn to the opponent: mana is recomputed from the turn
// count rather than accumulated, the incoming player's cards become able to
// attack again, and they draw one card (which may trigger fatigue).
func (g *Game) EndTurn(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return ErrGameNotInProgress
	}
	if g.CurrentTurn != playerID {
		return ErrNotYourTurn
	}
	next := g.opponent(playerID)
	if next == nil {
		return ErrOpponentNotFound
	}

	g.CurrentTurn = next.ID
	g.TurnNumber++
	next.Mana = min(g.TurnNumber, MaxMana)
	for _, bc := range next.Board {
		bc.CanAttack = true
	}
	g.drawInto(next)

	return nil
}

// PlayerIDs returns the ids of the current participants.
func (g *Game) PlayerIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

func boardIndex(board []*BoardCard, cardID int) int {
	for i, bc := range board {
		if bc.Card.ID == cardID {
			return i
		}
	}
	return -1
}
