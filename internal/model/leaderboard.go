package model

import "time"

// EntryID uniquely identifies a leaderboard entry
type EntryID string

// Mode is the game variant a run was played in
type Mode string

const (
	ModePassThrough Mode = "pass-through"
	ModeWalls       Mode = "walls"
)

// ParseMode converts a wire value into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePassThrough, ModeWalls:
		return Mode(s), nil
	default:
		return "", ErrInvalidMode
	}
}

// LeaderboardEntry is a single scored run. Entries are append-only:
// once recorded they are never mutated or deleted.
// Username is a display-name snapshot with no referential integrity
// back to Account, so historical rows survive account changes.
type LeaderboardEntry struct {
	ID       EntryID
	Username string
	Score    int
	Mode     Mode
	Date     time.Time // calendar date of the run, truncated to day

	// CreatedAt orders entries with equal scores (earlier submission first)
	CreatedAt time.Time
}
