package model

// AccountID uniquely identifies a user account
type AccountID string

// Account represents a registered user.
// PasswordHash is a bcrypt hash; the plaintext password is never stored.
type Account struct {
	ID           AccountID
	Username     string // unique, immutable after signup
	Email        string // unique, exact-match lookup
	PasswordHash string
}
