package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/enrollkit/enroll/internal/domain"
	"github.com/enrollkit/enroll/internal/repository"
	"github.com/enrollkit/enroll/pkg/config"
	"github.com/enrollkit/enroll/pkg/crypto"
	jwtpkg "github.com/enrollkit/enroll/pkg/jwt"
)

// ErrInvalidCredentials is returned when the email or password is wrong. The
// two cases are deliberately indistinguishable to callers.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Service handles authentication for registered accounts.
type Service struct {
	accounts repository.AccountRepository
	logger   *slog.Logger
	cfg      config.APIConfig
}

// New constructs a Service.
func New(accounts repository.AccountRepository, logger *slog.Logger, cfg config.APIConfig) Service {
	return Service{accounts: accounts, logger: logger, cfg: cfg}
}

// TokenPair contains access and refresh tokens.
type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    time.Duration `json:"expires_in"`
}

// Login authenticates an account and returns tokens.
func (s Service) Login(ctx context.Context, email, password string) (*domain.Account, TokenPair, error) {
	account, err := s.accounts.GetAccountByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if err := crypto.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	tokens, err := s.issueTokens(account.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	s.logger.Info("account logged in", "account_id", account.ID)
	return account, tokens, nil
}

// Authorize validates a bearer token and returns the associated account and claims.
func (s Service) Authorize(ctx context.Context, token string) (*domain.Account, *jwtpkg.Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, nil, errors.New("token required")
	}
	claims, err := jwtpkg.Parse(trimmed, s.cfg.JWTSecret)
	if err != nil {
		return nil, nil, err
	}
	account, err := s.accounts.GetAccountByID(ctx, claims.AccountID)
	if err != nil {
		return nil, nil, err
	}
	return account, claims, nil
}

func (s Service) issueTokens(accountID string) (TokenPair, error) {
	access, err := jwtpkg.GenerateToken(accountID, s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := jwtpkg.GenerateToken(accountID, s.cfg.JWTSecret, s.cfg.RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: s.cfg.AccessTokenTTL}, nil
}
