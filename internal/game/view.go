package game

import "github.com/cardduel/duel-server-go/internal/catalog"

// GameView is the serialized, per-viewer snapshot sent after each mutating
// operation. The viewer sees their own hand in full but the opponent's hand
// and deck only as counts; both boards are visible in full. CurrentTurn and
// Winner are rendered relative to the viewer.
type GameView struct {
	GameID         string         `json:"gameId"`
	State          Status         `json:"state"`
	CurrentTurn    string         `json:"currentTurn"` // "player" or "opponent"
	PlayerHealth   int            `json:"playerHealth"`
	OpponentHealth int            `json:"opponentHealth"`
	PlayerMana     int            `json:"playerMana"`
	OpponentMana   int            `json:"opponentMana"`
	PlayerHand     []catalog.Card `json:"playerHand"`
	PlayerDeck     int            `json:"playerDeck"`
	OpponentHand   int            `json:"opponentHand"`
	OpponentDeck   int            `json:"opponentDeck"`
	PlayerBoard    []BoardCard    `json:"playerBoard"`
	OpponentBoard  []BoardCard    `json:"opponentBoard"`
	TurnNumber     int            `json:"turnNumber"`
	Winner         string         `json:"winner,omitempty"` // "you" or "opponent" once ended
}

// View builds the snapshot of the match as seen by the given participant.
func (g *Game) View(viewerID string) (*GameView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	viewer := g.player(viewerID)
	if viewer == nil {
		return nil, ErrPlayerNotFound
	}
	opp := g.opponent(viewerID)

	view := &GameView{
		GameID:       g.ID,
		State:        g.Status,
		PlayerHealth: viewer.Health,
		PlayerMana:   viewer.Mana,
		PlayerHand:   append([]catalog.Card{}, viewer.Hand...),
		PlayerDeck:   len(viewer.Deck),
		PlayerBoard:  copyBoard(viewer.Board),
		TurnNumber:   g.TurnNumber,
	}

	if g.CurrentTurn == viewerID {
		view.CurrentTurn = "player"
	} else {
		view.CurrentTurn = "opponent"
	}

	if opp != nil {
		view.OpponentHealth = opp.Health
		view.OpponentMana = opp.Mana
		view.OpponentHand = len(opp.Hand)
		view.OpponentDeck = len(opp.Deck)
		view.OpponentBoard = copyBoard(opp.Board)
	} else {
		view.OpponentBoard = []BoardCard{}
	}

	if g.Status == StatusEnded && g.Winner != "" {
		if g.Winner == viewerID {
			view.Winner = "you"
		} else {
			view.Winner = "opponent"
		}
	}

	return view, nil
}

// copyBoard snapshots board entries by value so the view never aliases
// live match state.
func copyBoard(board []*BoardCard) []BoardCard {
	out := make([]BoardCard, 0, len(board))
	for _, bc := range board {
		out = append(out, *bc)
	}
	return out
}
