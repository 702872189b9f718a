package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snakesocial/snakesocial/internal/api/apierr"
	"github.com/snakesocial/snakesocial/internal/api/request"
	"github.com/snakesocial/snakesocial/internal/api/response"
	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboard *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboard *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: leaderboard,
	}
}

// List handles GET /api/leaderboard?mode=
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	var mode *model.Mode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := model.ParseMode(raw)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		mode = &parsed
	}

	entries, err := h.leaderboard.List(r.Context(), mode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}

// Submit handles POST /api/leaderboard
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	entry, err := h.leaderboard.Submit(r.Context(), req.Username, req.Score, mode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.LeaderboardEntryFromModel(entry))
}
