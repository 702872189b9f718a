package response

import (
	"time"

	"github.com/snakesocial/snakesocial/internal/model"
)

// Account represents an account in API responses.
// The password hash is deliberately absent.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:       string(a.ID),
		Username: a.Username,
		Email:    a.Email,
	}
}

// LeaderboardEntry represents a scored run in API responses
type LeaderboardEntry struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Mode     string `json:"mode"`
	Date     string `json:"date"`
}

// LeaderboardEntryFromModel converts a model.LeaderboardEntry
func LeaderboardEntryFromModel(e *model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		ID:       string(e.ID),
		Username: e.Username,
		Score:    e.Score,
		Mode:     string(e.Mode),
		Date:     e.Date.Format("2006-01-02"),
	}
}

// LeaderboardFromModel converts a slice of entries, preserving order
func LeaderboardFromModel(entries []*model.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryFromModel(e)
	}
	return out
}

// ActivePlayer represents an in-progress session in API responses.
// Score may include display jitter on top of the stored value.
type ActivePlayer struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	Mode      string    `json:"mode"`
	StartedAt time.Time `json:"startedAt"`
}

// ActivePlayerFromModel converts a model.ActivePlayer, adding the given
// presentation-only score jitter. The stored score is never modified.
func ActivePlayerFromModel(p *model.ActivePlayer, jitter int) ActivePlayer {
	return ActivePlayer{
		ID:        string(p.ID),
		Username:  p.Username,
		Score:     p.Score + jitter,
		Mode:      string(p.Mode),
		StartedAt: p.StartedAt,
	}
}

// Position is a board cell in the watch-mode game state
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameState is the spectator view of a session
type GameState struct {
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction string     `json:"direction"`
	Score     int        `json:"score"`
	GameOver  bool       `json:"gameOver"`
}

// GameStateFromModel converts a model.GameState
func GameStateFromModel(g *model.GameState) GameState {
	snake := make([]Position, len(g.Snake))
	for i, p := range g.Snake {
		snake[i] = Position{X: p.X, Y: p.Y}
	}
	return GameState{
		Snake:     snake,
		Food:      Position{X: g.Food.X, Y: g.Food.Y},
		Direction: string(g.Direction),
		Score:     g.Score,
		GameOver:  g.GameOver,
	}
}

// Message is a simple acknowledgement body
type Message struct {
	Message string `json:"message"`
}
