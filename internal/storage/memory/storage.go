package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts      map[model.AccountID]*model.Account
	emailIndex    map[string]model.AccountID
	usernameIndex map[string]model.AccountID
	leaderboard   []*model.LeaderboardEntry
	activePlayers map[model.PlayerID]*model.ActivePlayer
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:      make(map[model.AccountID]*model.Account),
		emailIndex:    make(map[string]model.AccountID),
		usernameIndex: make(map[string]model.AccountID),
		activePlayers: make(map[model.PlayerID]*model.ActivePlayer),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness checks mirror the SQL backend's unique indexes
	if existing, ok := s.emailIndex[account.Email]; ok && existing != account.ID {
		return model.ErrEmailTaken
	}
	if existing, ok := s.usernameIndex[account.Username]; ok && existing != account.ID {
		return model.ErrUsernameTaken
	}

	s.accounts[account.ID] = account
	s.emailIndex[account.Email] = account.ID
	s.usernameIndex[account.Username] = account.ID
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return s.accounts[id], nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return s.accounts[id], nil
}

// Leaderboard operations

func (s *Storage) AppendLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboard = append(s.leaderboard, entry)
	return nil
}

func (s *Storage) ListLeaderboard(ctx context.Context, mode *model.Mode) ([]*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*model.LeaderboardEntry, 0, len(s.leaderboard))
	for _, entry := range s.leaderboard {
		if mode != nil && entry.Mode != *mode {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Active player operations

func (s *Storage) SaveActivePlayer(ctx context.Context, player *model.ActivePlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activePlayers[player.ID]; ok {
		return model.ErrPlayerExists
	}
	s.activePlayers[player.ID] = player
	return nil
}

func (s *Storage) GetActivePlayer(ctx context.Context, id model.PlayerID) (*model.ActivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.activePlayers[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*model.ActivePlayer, 0, len(s.activePlayers))
	for _, player := range s.activePlayers {
		players = append(players, player)
	}

	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].ID < players[j].ID
	})
	return players, nil
}

func (s *Storage) DeleteActivePlayer(ctx context.Context, id model.PlayerID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activePlayers[id]; !ok {
		return false, nil
	}
	delete(s.activePlayers, id)
	return true, nil
}
