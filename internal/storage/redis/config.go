package redis

import "time"

// Config holds Redis connection and cache behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// LeaderboardTTL bounds staleness of cached leaderboard listings
	LeaderboardTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       10,
		MinIdleConns:   2,
		LeaderboardTTL: 30 * time.Second,
	}
}
