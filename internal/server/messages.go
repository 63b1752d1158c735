package server

import (
	"encoding/json"

	"github.com/cardduel/duel-server-go/internal/game"
)

// ClientMessage is the envelope for every inbound tagged message. Fields
// beyond Type are populated per tag; unused ones stay zero.
type ClientMessage struct {
	Type            string          `json:"type"`
	Username        string          `json:"username,omitempty"`
	GameID          string          `json:"gameId,omitempty"`
	CardID          int             `json:"cardId,omitempty"`
	Position        game.Position   `json:"position,omitempty"`
	AttackingCardID int             `json:"attackingCardId,omitempty"`
	TargetCardID    int             `json:"targetCardId,omitempty"`
	Move            json.RawMessage `json:"move,omitempty"`
}

// Inbound message tags.
const (
	msgSetUsername  = "set_username"
	msgCreateGame   = "create_game"
	msgJoinGame     = "join_game"
	msgLeaveGame    = "leave_game"
	msgGetGames     = "get_games"
	msgPlayCard     = "play_card"
	msgDrawCard     = "draw_card"
	msgEndTurn      = "end_turn"
	msgAttack       = "attack"
	msgAttackPlayer = "attack_player"
	msgGameMove     = "game_move"
)

type opponentInfo struct {
	Username string `json:"username"`
}

// mustJSON marshals fixed-shape server messages; none of them can fail.
func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func connectedMsg(clientID string) []byte {
	return mustJSON(struct {
		Type     string `json:"type"`
		ClientID string `json:"clientId"`
	}{"connected", clientID})
}

func errorMsg(text string) []byte {
	return mustJSON(struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}{"error", text})
}

func usernameSetMsg(username string) []byte {
	return mustJSON(struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}{"username_set", username})
}

func gameCreatedMsg(gameID string) []byte {
	return mustJSON(struct {
		Type   string `json:"type"`
		GameID string `json:"gameId"`
	}{"game_created", gameID})
}

func gameJoinedMsg(gameID, opponentUsername string, youAreHost bool) []byte {
	return mustJSON(struct {
		Type       string       `json:"type"`
		GameID     string       `json:"gameId"`
		Opponent   opponentInfo `json:"opponent"`
		YouAreHost bool         `json:"youAreHost"`
	}{"game_joined", gameID, opponentInfo{opponentUsername}, youAreHost})
}

func opponentJoinedMsg(gameID, opponentUsername string) []byte {
	return mustJSON(struct {
		Type     string       `json:"type"`
		GameID   string       `json:"gameId"`
		Opponent opponentInfo `json:"opponent"`
	}{"opponent_joined", gameID, opponentInfo{opponentUsername}})
}

func gameLeftMsg(gameID string) []byte {
	return mustJSON(struct {
		Type   string `json:"type"`
		GameID string `json:"gameId"`
	}{"game_left", gameID})
}

func opponentLeftMsg(gameID string) []byte {
	return mustJSON(struct {
		Type   string `json:"type"`
		GameID string `json:"gameId"`
	}{"opponent_left", gameID})
}

func gamesListMsg(games []game.Summary) []byte {
	return mustJSON(struct {
		Type  string         `json:"type"`
		Games []game.Summary `json:"games"`
	}{"games_list", games})
}

func gameStateMsg(view *game.GameView) []byte {
	return mustJSON(struct {
		Type string `json:"type"`
		*game.GameView
	}{"game_state", view})
}

func gameEndedMsg(gameID, winner string) []byte {
	return mustJSON(struct {
		Type   string `json:"type"`
		GameID string `json:"gameId"`
		Winner string `json:"winner"`
	}{"game_ended", gameID, winner})
}
