package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snakesocial/snakesocial/internal/dependencies/clock"
	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage"
)

// Service provides the score ledger: append-only submissions and ordered
// queries. Entries are never updated or deleted.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new leaderboard service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// List returns leaderboard entries, optionally filtered by mode, ordered by
// descending score. Equal scores order by submission time (earlier first),
// then id, so a fixed input set always lists identically.
func (s *Service) List(ctx context.Context, mode *model.Mode) ([]*model.LeaderboardEntry, error) {
	entries, err := s.storage.ListLeaderboard(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return entries, nil
}

// Submit records a scored run. The username is stored as a snapshot; it does
// not need to reference an account. Negative scores are rejected.
func (s *Service) Submit(ctx context.Context, username string, score int, mode model.Mode) (*model.LeaderboardEntry, error) {
	if score < 0 {
		return nil, model.ErrInvalidScore
	}

	now := s.clock.Now()
	entry := &model.LeaderboardEntry{
		ID:        model.EntryID(uuid.NewString()),
		Username:  username,
		Score:     score,
		Mode:      mode,
		Date:      now.UTC().Truncate(24 * time.Hour),
		CreatedAt: now,
	}

	if err := s.storage.AppendLeaderboardEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("submit score: %w", err)
	}

	s.logger.Info("score submitted",
		slog.String("entry_id", string(entry.ID)),
		slog.String("mode", string(mode)),
		slog.Int("score", score),
	)
	return entry, nil
}
