package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage"
)

// Service handles signup and login for user accounts
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new account service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Signup registers a new account. The email is checked first so the common
// case gets a clean conflict; a concurrent signup racing past the check is
// still caught by the storage layer's unique constraints.
func (s *Service) Signup(ctx context.Context, email, username, password string) (*model.Account, error) {
	_, err := s.storage.GetAccountByEmail(ctx, email)
	if err == nil {
		return nil, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := &model.Account{
		ID:           model.AccountID(uuid.NewString()),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.storage.SaveAccount(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info("account created", slog.String("account_id", string(acct.ID)))
	return acct, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both return ErrInvalidCredentials so callers cannot probe for
// registered addresses.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Account, error) {
	acct, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	// A malformed stored hash also fails closed as a credential mismatch
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return acct, nil
}
