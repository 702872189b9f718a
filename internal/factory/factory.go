package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/snakesocial/snakesocial/internal/dependencies/clock"
	"github.com/snakesocial/snakesocial/internal/dependencies/random"
	"github.com/snakesocial/snakesocial/internal/services/account"
	"github.com/snakesocial/snakesocial/internal/services/game"
	"github.com/snakesocial/snakesocial/internal/services/leaderboard"
	"github.com/snakesocial/snakesocial/internal/storage"
	"github.com/snakesocial/snakesocial/internal/storage/memory"
	"github.com/snakesocial/snakesocial/internal/storage/postgres"
	redicache "github.com/snakesocial/snakesocial/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AccountService     *account.Service
	LeaderboardService *leaderboard.Service
	GameService        *game.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// PostgresConfig holds Postgres settings (required if StorageType is "postgres")
	PostgresConfig *postgres.Config
	// RedisConfig enables the leaderboard cache when set
	RedisConfig *redicache.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		pgStore, err := postgres.New(ctx, *cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		if err := pgStore.InitSchema(ctx); err != nil {
			pgStore.Close()
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}

	// Layer the leaderboard cache over the store when configured
	if cfg.RedisConfig != nil {
		cached, err := redicache.New(store, *cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = cached
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		AccountService:     account.New(store, logger),
		LeaderboardService: leaderboard.New(store, clk, logger),
		GameService:        game.New(store, logger),
	}
}
