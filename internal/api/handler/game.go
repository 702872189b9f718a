package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snakesocial/snakesocial/internal/api/apierr"
	"github.com/snakesocial/snakesocial/internal/api/response"
	"github.com/snakesocial/snakesocial/internal/dependencies/random"
	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/services/game"
)

// jitterRange bounds the presentation-only score jitter on active-player
// listings: each read adds [0, jitterRange) to the displayed score
const jitterRange = 51

// GameHandler handles active-player and watch-mode endpoints
type GameHandler struct {
	games  *game.Service
	random random.Random
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *game.Service, random random.Random) *GameHandler {
	return &GameHandler{
		games:  games,
		random: random,
	}
}

// ListActive handles GET /api/games/active.
// Displayed scores get fresh jitter on every read; the stored score is the
// source of truth and is never written back.
func (h *GameHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	players, err := h.games.ActivePlayers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.ActivePlayer, len(players))
	for i, p := range players {
		out[i] = response.ActivePlayerFromModel(p, h.random.Intn(jitterRange))
	}

	response.JSON(w, http.StatusOK, out)
}

// WatchState handles GET /api/games/{player_id}
func (h *GameHandler) WatchState(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	state, err := h.games.WatchState(r.Context(), playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(state))
}
