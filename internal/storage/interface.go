package storage

import (
	"context"

	"github.com/snakesocial/snakesocial/internal/model"
)

// Storage defines the interface for data persistence.
//
// Uniqueness (account email/username, session ids) is enforced by the
// implementation; violations surface as the model conflict errors so
// callers can branch on kind. Writes are atomic per call.
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)

	// Leaderboard operations. Entries are append-only; list results are
	// ordered by descending score, then submission time, then id.
	AppendLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error
	ListLeaderboard(ctx context.Context, mode *model.Mode) ([]*model.LeaderboardEntry, error)

	// Active player operations. List results are ordered by descending score.
	SaveActivePlayer(ctx context.Context, player *model.ActivePlayer) error
	GetActivePlayer(ctx context.Context, id model.PlayerID) (*model.ActivePlayer, error)
	ListActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error)
	DeleteActivePlayer(ctx context.Context, id model.PlayerID) (bool, error)
}
