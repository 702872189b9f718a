package model

import "time"

// PlayerID uniquely identifies an in-progress game session
type PlayerID string

// ActivePlayer represents a game session currently in progress.
// Username is a display-name snapshot, not a reference to an Account.
type ActivePlayer struct {
	ID        PlayerID
	Username  string
	Score     int
	Mode      Mode
	StartedAt time.Time
}
