package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage"
)

// Service manages the registry of active game sessions and serves the
// spectator view. Sessions exist from StartSession until EndSession; there
// is no automatic expiry.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new game service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ActivePlayers returns all sessions in progress, highest score first.
// Scores here are the stored source of truth; any display jitter is applied
// by the serving layer and never written back.
func (s *Service) ActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error) {
	players, err := s.storage.ListActivePlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active players: %w", err)
	}
	return players, nil
}

// ActivePlayer looks up a session by id
func (s *Service) ActivePlayer(ctx context.Context, id model.PlayerID) (*model.ActivePlayer, error) {
	return s.storage.GetActivePlayer(ctx, id)
}

// StartSession registers a new session. The id is caller-supplied; reusing
// a live session id is a conflict.
func (s *Service) StartSession(ctx context.Context, id model.PlayerID, username string, score int, mode model.Mode, startedAt time.Time) (*model.ActivePlayer, error) {
	if score < 0 {
		return nil, model.ErrInvalidScore
	}

	player := &model.ActivePlayer{
		ID:        id,
		Username:  username,
		Score:     score,
		Mode:      mode,
		StartedAt: startedAt,
	}

	if err := s.storage.SaveActivePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("session started",
		slog.String("player_id", string(id)),
		slog.String("mode", string(mode)),
	)
	return player, nil
}

// EndSession removes a session, reporting whether one was removed.
// Ending an absent session is not an error.
func (s *Service) EndSession(ctx context.Context, id model.PlayerID) (bool, error) {
	removed, err := s.storage.DeleteActivePlayer(ctx, id)
	if err != nil {
		return false, fmt.Errorf("end session: %w", err)
	}
	if removed {
		s.logger.Info("session ended", slog.String("player_id", string(id)))
	}
	return removed, nil
}

// WatchState returns the spectator view of a session. The board is a fixed
// placeholder; only the score comes from the stored session.
func (s *Service) WatchState(ctx context.Context, id model.PlayerID) (*model.GameState, error) {
	player, err := s.storage.GetActivePlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.GameState{
		Snake:     []model.Position{{X: 10, Y: 10}},
		Food:      model.Position{X: 5, Y: 5},
		Direction: model.DirectionRight,
		Score:     player.Score,
		GameOver:  false,
	}, nil
}
