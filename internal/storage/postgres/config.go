package postgres

import "time"

// Config holds Postgres connection settings
type Config struct {
	// URL is the Postgres connection URL (e.g., postgres://localhost:5432/snake)
	URL string

	// Pool settings
	MaxConns       int32
	ConnectTimeout time.Duration
}

// DefaultConfig returns sensible defaults for Postgres configuration
func DefaultConfig() Config {
	return Config{
		URL:            "postgres://localhost:5432/snake_social",
		MaxConns:       10,
		ConnectTimeout: 5 * time.Second,
	}
}
