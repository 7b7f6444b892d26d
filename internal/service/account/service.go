package account

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/enrollkit/enroll/internal/domain"
	"github.com/enrollkit/enroll/internal/repository"
	"github.com/enrollkit/enroll/internal/signup"
)

// Service persists new accounts. It satisfies signup.AccountCreator.
type Service struct {
	accounts repository.AccountRepository
	logger   *slog.Logger
}

// New constructs a Service.
func New(accounts repository.AccountRepository, logger *slog.Logger) Service {
	return Service{accounts: accounts, logger: logger}
}

var _ signup.AccountCreator = Service{}

// Create stores a new account and returns its persisted form. Email is
// normalized to lowercase so the unique index catches case variants.
func (s Service) Create(ctx context.Context, params signup.CreateParams) (*domain.Account, error) {
	account := &domain.Account{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Email:        strings.ToLower(params.Email),
		PasswordHash: params.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	s.logger.Info("account created", "account_id", account.ID)
	return account, nil
}
