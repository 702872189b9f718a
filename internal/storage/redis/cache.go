package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage"
)

// Cache is a read-through leaderboard cache layered over another Storage.
// Leaderboard listings are served from Redis when present and repopulated
// from the underlying store on miss; submissions invalidate the cached
// listings. All other operations delegate directly.
//
// Redis faults degrade to the underlying store rather than failing the
// request; the underlying store stays the source of truth.
type Cache struct {
	storage.Storage

	client *redis.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a new Redis cache over the given storage
func New(underlying storage.Storage, cfg Config, logger *slog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(underlying, client, cfg, logger), nil
}

// NewWithClient creates a Redis cache with an existing client (for testing)
func NewWithClient(underlying storage.Storage, client *redis.Client, cfg Config, logger *slog.Logger) *Cache {
	return &Cache{
		Storage: underlying,
		client:  client,
		cfg:     cfg,
		logger:  logger,
	}
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

// Ensure Cache implements the interface
var _ storage.Storage = (*Cache)(nil)

func (c *Cache) ListLeaderboard(ctx context.Context, mode *model.Mode) ([]*model.LeaderboardEntry, error) {
	key := leaderboardKey(mode)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var entries []*model.LeaderboardEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
		// Corrupt cache entry; fall through to the source and rewrite it
		c.logger.Warn("dropping malformed leaderboard cache entry", slog.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("leaderboard cache read failed", slog.String("error", err.Error()))
	}

	entries, err := c.Storage.ListLeaderboard(ctx, mode)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if err := c.client.Set(ctx, key, data, c.cfg.LeaderboardTTL).Err(); err != nil {
			c.logger.Warn("leaderboard cache write failed", slog.String("error", err.Error()))
		}
	}
	return entries, nil
}

func (c *Cache) AppendLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	if err := c.Storage.AppendLeaderboardEntry(ctx, entry); err != nil {
		return err
	}

	if err := c.client.Del(ctx, leaderboardKeys()...).Err(); err != nil {
		// Stale listings age out via TTL
		c.logger.Warn("leaderboard cache invalidation failed", slog.String("error", err.Error()))
	}
	return nil
}
