package game

import "errors"

// Rule and structural failures returned by registry and engine operations.
// Operations validate every precondition before the first state write, so a
// returned error guarantees the match is untouched.
var (
	ErrGameNotFound        = errors.New("game not found")
	ErrGameNotAvailable    = errors.New("game is not available to join")
	ErrGameFull            = errors.New("game is already full")
	ErrAlreadyJoined       = errors.New("already in this game")
	ErrInsufficientPlayers = errors.New("not enough players")
	ErrGameNotInProgress   = errors.New("game is not in progress")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrCardNotFound        = errors.New("card not found")
	ErrInsufficientMana    = errors.New("not enough mana")
	ErrBoardFull           = errors.New("board is full")
	ErrHandFull            = errors.New("hand is full")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrOpponentNotFound    = errors.New("opponent not found")
	ErrCannotAttack        = errors.New("card cannot attack yet")
)
