package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakesocial/snakesocial/internal/api"
	"github.com/snakesocial/snakesocial/internal/api/apierr"
	"github.com/snakesocial/snakesocial/internal/api/response"
	"github.com/snakesocial/snakesocial/internal/factory"
	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:             testutil.NopLogger(),
		AccountService:     app.AccountService,
		LeaderboardService: app.LeaderboardService,
		GameService:        app.GameService,
		Random:             app.MockRandom,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

// Auth endpoints

func TestSignupSucceeds(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	acct := decode[response.Account](t, rr)
	assert.NotEmpty(t, acct.ID)
	assert.Equal(t, "alice", acct.Username)
	assert.Equal(t, "alice@example.com", acct.Email)
}

func TestSignupNeverReturnsPasswordMaterial(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "password_hash")
	assert.NotContains(t, rr.Body.String(), "password123")
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	ts := newTestServer(t)

	first := ts.request(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "alice@example.com", "username": "alice", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := ts.request(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "alice@example.com", "username": "alice2", "password": "pw",
	})
	assert.Equal(t, http.StatusConflict, second.Code)

	errResp := decode[apierr.ErrorResponse](t, second)
	assert.Equal(t, apierr.CodeEmailTaken, errResp.Error.Code)
}

func TestSignupRejectsMalformedEmail(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "not-an-email", "username": "alice", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginSucceeds(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "alice@example.com", "username": "alice", "password": "password123",
	})

	rr := ts.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	acct := decode[response.Account](t, rr)
	assert.Equal(t, "alice", acct.Username)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "alice@example.com", "username": "alice", "password": "password123",
	})

	wrongPassword := ts.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	unknownEmail := ts.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "nobody@example.com", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// Identical bodies: the response must not reveal which check failed
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Successfully logged out"}`, rr.Body.String())
}

// Leaderboard endpoints

func TestSubmitAndListLeaderboard(t *testing.T) {
	ts := newTestServer(t)

	for _, sub := range []map[string]any{
		{"username": "p1", "score": 50, "mode": "walls"},
		{"username": "p2", "score": 80, "mode": "walls"},
		{"username": "p3", "score": 60, "mode": "pass-through"},
	} {
		rr := ts.request(http.MethodPost, "/api/leaderboard", sub)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	walls := decode[[]response.LeaderboardEntry](t, ts.request(http.MethodGet, "/api/leaderboard?mode=walls", nil))
	require.Len(t, walls, 2)
	assert.Equal(t, "p2", walls[0].Username)
	assert.Equal(t, 80, walls[0].Score)
	assert.Equal(t, "p1", walls[1].Username)
	assert.Equal(t, 50, walls[1].Score)

	all := decode[[]response.LeaderboardEntry](t, ts.request(http.MethodGet, "/api/leaderboard", nil))
	assert.Len(t, all, 3)
}

func TestSubmitScoreReturnsEntry(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/leaderboard", map[string]any{
		"username": "alice", "score": 42, "mode": "walls",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	entry := decode[response.LeaderboardEntry](t, rr)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, 42, entry.Score)
	assert.Equal(t, "walls", entry.Mode)
	assert.Equal(t, "2024-01-01", entry.Date)
}

func TestSubmitScoreRejectsNegative(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/leaderboard", map[string]any{
		"username": "alice", "score": -1, "mode": "walls",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	errResp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeInvalidScore, errResp.Error.Code)
}

func TestListLeaderboardRejectsUnknownMode(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/leaderboard?mode=diagonal", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Game endpoints

func TestListActivePlayersAppliesDisplayJitter(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	started := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	_, err := ts.app.GameService.StartSession(ctx, "sess-1", "alice", 100, model.ModeWalls, started)
	require.NoError(t, err)
	_, err = ts.app.GameService.StartSession(ctx, "sess-2", "bob", 40, model.ModePassThrough, started)
	require.NoError(t, err)

	ts.app.MockRandom.QueueIntn(7, 3)

	rr := ts.request(http.MethodGet, "/api/games/active", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	players := decode[[]response.ActivePlayer](t, rr)
	require.Len(t, players, 2)
	assert.Equal(t, "alice", players[0].Username)
	assert.Equal(t, 107, players[0].Score)
	assert.Equal(t, "bob", players[1].Username)
	assert.Equal(t, 43, players[1].Score)

	// Jitter is presentation-only: the stored scores are unchanged
	stored, err := ts.app.GameService.ActivePlayer(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Score)
}

func TestWatchStateReturnsPlaceholderBoard(t *testing.T) {
	ts := newTestServer(t)

	started := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	_, err := ts.app.GameService.StartSession(context.Background(), "sess-1", "alice", 37, model.ModeWalls, started)
	require.NoError(t, err)

	rr := ts.request(http.MethodGet, "/api/games/sess-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	state := decode[response.GameState](t, rr)
	assert.Equal(t, 37, state.Score)
	assert.Equal(t, "RIGHT", state.Direction)
	assert.False(t, state.GameOver)
	assert.Equal(t, []response.Position{{X: 10, Y: 10}}, state.Snake)
	assert.Equal(t, response.Position{X: 5, Y: 5}, state.Food)
}

func TestWatchStateUnknownPlayerIs404(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/games/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	errResp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodePlayerNotFound, errResp.Error.Code)
}
