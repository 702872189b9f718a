package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snakesocial/snakesocial/internal/api/apierr"
	"github.com/snakesocial/snakesocial/internal/api/handler"
	"github.com/snakesocial/snakesocial/internal/dependencies/random"
	"github.com/snakesocial/snakesocial/internal/middleware"
	"github.com/snakesocial/snakesocial/internal/services/account"
	"github.com/snakesocial/snakesocial/internal/services/game"
	"github.com/snakesocial/snakesocial/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AccountService     *account.Service
	LeaderboardService *leaderboard.Service
	GameService        *game.Service
	Random             random.Random
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccountService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	gameHandler := handler.NewGameHandler(cfg.GameService, cfg.Random)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, panicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Auth routes
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Leaderboard routes
	api.HandleFunc("/leaderboard", leaderboardHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", leaderboardHandler.Submit).Methods(http.MethodPost)

	// Game routes. "active" is registered before the watch route so it is
	// not swallowed by the {player_id} matcher.
	api.HandleFunc("/games/active", gameHandler.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/games/{player_id}", gameHandler.WatchState).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
