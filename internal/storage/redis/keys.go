package redis

import (
	"fmt"

	"github.com/snakesocial/snakesocial/internal/model"
)

// Key prefix for all cached data
const keyPrefix = "snake"

// leaderboardKey returns the cache key for a leaderboard listing.
// The unfiltered listing and each mode filter are cached separately.
func leaderboardKey(mode *model.Mode) string {
	if mode == nil {
		return fmt.Sprintf("%s:leaderboard:all", keyPrefix)
	}
	return fmt.Sprintf("%s:leaderboard:mode:%s", keyPrefix, *mode)
}

// leaderboardKeys returns every leaderboard cache key, for invalidation
func leaderboardKeys() []string {
	return []string{
		leaderboardKey(nil),
		fmt.Sprintf("%s:leaderboard:mode:%s", keyPrefix, model.ModePassThrough),
		fmt.Sprintf("%s:leaderboard:mode:%s", keyPrefix, model.ModeWalls),
	}
}
