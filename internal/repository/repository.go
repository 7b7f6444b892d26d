package repository

import (
	"context"

	"github.com/enrollkit/enroll/internal/domain"
)

// AccountRepository persists accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)
}
