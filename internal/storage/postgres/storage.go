package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage"
)

// Storage is a Postgres-backed implementation of the storage interface.
// Connections are acquired from the pool per call and released when the
// call returns; uniqueness relies on the schema's unique indexes.
type Storage struct {
	pool *pgxpool.Pool
}

// New creates a new Postgres storage instance
func New(ctx context.Context, cfg Config) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{pool: pool}, nil
}

// NewWithPool creates a Postgres storage with an existing pool (for testing)
func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

// Close closes the connection pool
func (s *Storage) Close() {
	s.pool.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// InitSchema creates the tables and unique indexes if they do not exist.
// There is no FK between accounts and the other tables: usernames on
// leaderboard and active_players rows are display-name snapshots.
func (s *Storage) InitSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL,
			email         TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			CONSTRAINT accounts_username_key UNIQUE (username),
			CONSTRAINT accounts_email_key UNIQUE (email)
		);
		CREATE TABLE IF NOT EXISTS leaderboard (
			id         TEXT PRIMARY KEY,
			username   TEXT NOT NULL,
			score      INTEGER NOT NULL,
			mode       TEXT NOT NULL,
			date       DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS leaderboard_score_idx
			ON leaderboard (score DESC, created_at ASC, id ASC);
		CREATE TABLE IF NOT EXISTS active_players (
			id         TEXT PRIMARY KEY,
			username   TEXT NOT NULL,
			score      INTEGER NOT NULL,
			mode       TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		string(account.ID), account.Username, account.Email, account.PasswordHash,
	)
	if err != nil {
		return mapAccountConflict(err)
	}
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	return s.scanAccount(s.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash FROM accounts WHERE id = $1`, string(id)))
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	return s.scanAccount(s.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash FROM accounts WHERE email = $1`, email))
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	return s.scanAccount(s.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash FROM accounts WHERE username = $1`, username))
}

func (s *Storage) scanAccount(row pgx.Row) (*model.Account, error) {
	var account model.Account
	var id string
	err := row.Scan(&id, &account.Username, &account.Email, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	account.ID = model.AccountID(id)
	return &account, nil
}

// Leaderboard operations

func (s *Storage) AppendLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO leaderboard (id, username, score, mode, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		string(entry.ID), entry.Username, entry.Score, string(entry.Mode), entry.Date, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append leaderboard entry: %w", err)
	}
	return nil
}

func (s *Storage) ListLeaderboard(ctx context.Context, mode *model.Mode) ([]*model.LeaderboardEntry, error) {
	query := `SELECT id, username, score, mode, date, created_at FROM leaderboard`
	args := []any{}
	if mode != nil {
		query += ` WHERE mode = $1`
		args = append(args, string(*mode))
	}
	query += ` ORDER BY score DESC, created_at ASC, id ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []*model.LeaderboardEntry{}
	for rows.Next() {
		var entry model.LeaderboardEntry
		var id, entryMode string
		if err := rows.Scan(&id, &entry.Username, &entry.Score, &entryMode, &entry.Date, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entry.ID = model.EntryID(id)
		entry.Mode = model.Mode(entryMode)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return entries, nil
}

// Active player operations

func (s *Storage) SaveActivePlayer(ctx context.Context, player *model.ActivePlayer) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO active_players (id, username, score, mode, started_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		string(player.ID), player.Username, player.Score, string(player.Mode), player.StartedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrPlayerExists
		}
		return fmt.Errorf("save active player: %w", err)
	}
	return nil
}

func (s *Storage) GetActivePlayer(ctx context.Context, id model.PlayerID) (*model.ActivePlayer, error) {
	var player model.ActivePlayer
	var playerID, mode string
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, score, mode, started_at FROM active_players WHERE id = $1`,
		string(id),
	).Scan(&playerID, &player.Username, &player.Score, &mode, &player.StartedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get active player: %w", err)
	}
	player.ID = model.PlayerID(playerID)
	player.Mode = model.Mode(mode)
	return &player, nil
}

func (s *Storage) ListActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, score, mode, started_at FROM active_players
		 ORDER BY score DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active players: %w", err)
	}
	defer rows.Close()

	players := []*model.ActivePlayer{}
	for rows.Next() {
		var player model.ActivePlayer
		var playerID, mode string
		if err := rows.Scan(&playerID, &player.Username, &player.Score, &mode, &player.StartedAt); err != nil {
			return nil, fmt.Errorf("scan active player: %w", err)
		}
		player.ID = model.PlayerID(playerID)
		player.Mode = model.Mode(mode)
		players = append(players, &player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active players: %w", err)
	}
	return players, nil
}

func (s *Storage) DeleteActivePlayer(ctx context.Context, id model.PlayerID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM active_players WHERE id = $1`, string(id))
	if err != nil {
		return false, fmt.Errorf("delete active player: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Error mapping

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// mapAccountConflict maps a unique violation on the accounts table to the
// domain conflict error for the constraint that was hit
func mapAccountConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return fmt.Errorf("save account: %w", err)
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return model.ErrEmailTaken
	}
	return model.ErrUsernameTaken
}
