package signup

import (
	"context"
	"errors"

	"log/slog"

	"github.com/enrollkit/enroll/internal/repository"
)

// Handler runs the registration checks in a fixed order and dispatches to
// the injected collaborators. It is stateless across calls and safe for
// concurrent use as long as the collaborators are.
type Handler struct {
	validator EmailValidator
	hasher    PasswordHasher
	accounts  AccountCreator
	logger    *slog.Logger
}

// NewHandler constructs a Handler with its collaborators.
func NewHandler(validator EmailValidator, hasher PasswordHasher, accounts AccountCreator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{validator: validator, hasher: hasher, accounts: accounts, logger: logger}
}

// Handle validates the request and registers the account. It never panics
// and never returns an error: every outcome, including a collaborator panic,
// becomes a Response. Checks short-circuit at the first failure, and the
// field order below determines which missing field is reported first.
func (h *Handler) Handle(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("signup collaborator panicked", "panic", rec)
			resp = serverError()
		}
	}()

	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"password", req.Password},
		{"passwordConfirmation", req.PasswordConfirmation},
	}
	for _, field := range fields {
		if field.value == "" {
			return missingField(field.name)
		}
	}

	if req.Password != req.PasswordConfirmation {
		return invalidField("passwordConfirmation")
	}

	if !h.validator.IsValid(req.Email) {
		return invalidField("email")
	}

	hash, err := h.hasher.Hash(ctx, req.Password)
	if err != nil {
		h.logger.Error("password hashing failed", "error", err)
		return serverError()
	}

	account, err := h.accounts.Create(ctx, CreateParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return invalidField("email")
		}
		h.logger.Error("account creation failed", "error", err)
		return serverError()
	}

	h.logger.Info("account registered", "account_id", account.ID)
	return ok(account)
}
