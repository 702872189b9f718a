package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/snakesocial/snakesocial/internal/api/apierr"
	"github.com/snakesocial/snakesocial/internal/api/request"
	"github.com/snakesocial/snakesocial/internal/api/response"
	"github.com/snakesocial/snakesocial/internal/services/account"
)

// AuthHandler handles signup, login and logout endpoints
type AuthHandler struct {
	accounts *account.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *account.Service) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if !validEmail(req.Email) {
		apierr.WriteError(w, apierr.NewInvalidRequestError("a valid email is required"))
		return
	}
	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	acct, err := h.accounts.Signup(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AccountFromModel(acct))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	acct, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountFromModel(acct))
}

// Logout handles POST /api/auth/logout. The API is stateless, so there is
// nothing to invalidate; the endpoint exists for client symmetry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Message{Message: "Successfully logged out"})
}

// validEmail is a shape check, not RFC validation; uniqueness and ownership
// are what actually matter downstream
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
