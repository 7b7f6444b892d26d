// Package signup implements the account registration flow. The handler is
// transport independent: the HTTP layer decodes a request, calls Handle and
// writes whatever Response comes back. Failures never escape Handle.
package signup

import (
	"context"
	"net/http"
	"time"

	"github.com/enrollkit/enroll/internal/domain"
)

// Request carries the registration fields submitted by a client.
type Request struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// Response pairs a status code with the body to serialize.
type Response struct {
	StatusCode int
	Body       any
}

// Error kinds surfaced to clients.
const (
	ErrKindMissingField = "missing_field"
	ErrKindInvalidField = "invalid_field"
	ErrKindServerError  = "server_error"
)

// ErrorBody identifies a failure kind and, where applicable, the field.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// AccountPayload is the created account minus the password hash.
type AccountPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// EmailValidator reports whether a string is a syntactically valid address.
type EmailValidator interface {
	IsValid(email string) bool
}

// PasswordHasher one-way transforms a plaintext secret.
type PasswordHasher interface {
	Hash(ctx context.Context, plain string) ([]byte, error)
}

// CreateParams are the validated fields handed to the account creator.
type CreateParams struct {
	Name         string
	Email        string
	PasswordHash []byte
}

// AccountCreator persists a new account and returns its stored form.
type AccountCreator interface {
	Create(ctx context.Context, params CreateParams) (*domain.Account, error)
}

func missingField(field string) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: ErrorBody{Error: ErrKindMissingField, Field: field}}
}

func invalidField(field string) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: ErrorBody{Error: ErrKindInvalidField, Field: field}}
}

func serverError() Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: ErrorBody{Error: ErrKindServerError}}
}

func ok(account *domain.Account) Response {
	return Response{StatusCode: http.StatusOK, Body: AccountPayload{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}}
}
