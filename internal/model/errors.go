package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Leaderboard errors
	ErrInvalidMode  = errors.New("invalid game mode")
	ErrInvalidScore = errors.New("score must be non-negative")

	// Active player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player session already exists")
)
