package signup

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"log/slog"

	"github.com/enrollkit/enroll/internal/domain"
	"github.com/enrollkit/enroll/internal/repository"
)

type validatorStub struct {
	valid  bool
	panics bool
	calls  []string
}

func (v *validatorStub) IsValid(email string) bool {
	v.calls = append(v.calls, email)
	if v.panics {
		panic("validator blew up")
	}
	return v.valid
}

type hasherStub struct {
	hash []byte
	err  error
}

func (h hasherStub) Hash(_ context.Context, plain string) ([]byte, error) {
	if h.err != nil {
		return nil, h.err
	}
	if h.hash != nil {
		return h.hash, nil
	}
	return []byte("hashed:" + plain), nil
}

type creatorStub struct {
	err    error
	params *CreateParams
}

func (c *creatorStub) Create(_ context.Context, params CreateParams) (*domain.Account, error) {
	c.params = &params
	if c.err != nil {
		return nil, c.err
	}
	return &domain.Account{
		ID:           "account-1",
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		CreatedAt:    time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() Request {
	return Request{
		Name:                 "any_name",
		Email:                "any_email@gmail.com",
		Password:             "any_password",
		PasswordConfirmation: "any_password",
	}
}

func TestHandleReportsFirstMissingField(t *testing.T) {
	cases := []struct {
		name  string
		req   Request
		field string
	}{
		{"missing name", Request{Email: "a@b.com", Password: "p", PasswordConfirmation: "p"}, "name"},
		{"missing email", Request{Name: "n", Password: "p", PasswordConfirmation: "p"}, "email"},
		{"missing password", Request{Name: "n", Email: "a@b.com", PasswordConfirmation: "p"}, "password"},
		{"missing confirmation", Request{Name: "n", Email: "a@b.com", Password: "p"}, "passwordConfirmation"},
		{"all missing reports name first", Request{}, "name"},
		{"name and password missing reports name", Request{Email: "a@b.com", PasswordConfirmation: "p"}, "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			validator := &validatorStub{valid: true}
			h := NewHandler(validator, hasherStub{}, &creatorStub{}, newLogger())
			resp := h.Handle(context.Background(), tc.req)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			body, ok := resp.Body.(ErrorBody)
			if !ok {
				t.Fatalf("expected ErrorBody, got %T", resp.Body)
			}
			if body.Error != ErrKindMissingField || body.Field != tc.field {
				t.Fatalf("unexpected error body: %+v", body)
			}
			if len(validator.calls) != 0 {
				t.Fatalf("validator should not run before presence checks, got %d calls", len(validator.calls))
			}
		})
	}
}

func TestHandleRejectsMismatchedConfirmationBeforeEmailCheck(t *testing.T) {
	validator := &validatorStub{valid: false}
	h := NewHandler(validator, hasherStub{}, &creatorStub{}, newLogger())

	req := validRequest()
	req.Email = "not-even-an-email"
	req.PasswordConfirmation = "different_password"

	resp := h.Handle(context.Background(), req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := resp.Body.(ErrorBody)
	if body.Error != ErrKindInvalidField || body.Field != "passwordConfirmation" {
		t.Fatalf("unexpected error body: %+v", body)
	}
	if len(validator.calls) != 0 {
		t.Fatalf("confirmation mismatch must short-circuit before validator, got %d calls", len(validator.calls))
	}
}

func TestHandleRejectsInvalidEmail(t *testing.T) {
	validator := &validatorStub{valid: false}
	h := NewHandler(validator, hasherStub{}, &creatorStub{}, newLogger())

	resp := h.Handle(context.Background(), validRequest())
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := resp.Body.(ErrorBody)
	if body.Error != ErrKindInvalidField || body.Field != "email" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestHandleInvokesValidatorWithRequestEmailExactlyOnce(t *testing.T) {
	validator := &validatorStub{valid: true}
	h := NewHandler(validator, hasherStub{}, &creatorStub{}, newLogger())

	req := validRequest()
	h.Handle(context.Background(), req)

	if len(validator.calls) != 1 {
		t.Fatalf("expected exactly one validator call, got %d", len(validator.calls))
	}
	if validator.calls[0] != req.Email {
		t.Fatalf("validator called with %q, want %q", validator.calls[0], req.Email)
	}
}

func TestHandleConvertsValidatorPanicToServerError(t *testing.T) {
	validator := &validatorStub{panics: true}
	h := NewHandler(validator, hasherStub{}, &creatorStub{}, newLogger())

	resp := h.Handle(context.Background(), validRequest())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body := resp.Body.(ErrorBody)
	if body.Error != ErrKindServerError {
		t.Fatalf("unexpected error body: %+v", body)
	}
	if body.Field != "" {
		t.Fatalf("server error must not expose detail, got field %q", body.Field)
	}
}

func TestHandleConvertsHasherErrorToServerError(t *testing.T) {
	h := NewHandler(&validatorStub{valid: true}, hasherStub{err: errors.New("bcrypt exploded")}, &creatorStub{}, newLogger())

	resp := h.Handle(context.Background(), validRequest())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if body := resp.Body.(ErrorBody); body.Error != ErrKindServerError {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestHandleConvertsCreatorErrorToServerError(t *testing.T) {
	creator := &creatorStub{err: errors.New("connection refused")}
	h := NewHandler(&validatorStub{valid: true}, hasherStub{}, creator, newLogger())

	resp := h.Handle(context.Background(), validRequest())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if body := resp.Body.(ErrorBody); body.Error != ErrKindServerError {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestHandleMapsDuplicateEmailToInvalidField(t *testing.T) {
	creator := &creatorStub{err: repository.ErrDuplicateEmail}
	h := NewHandler(&validatorStub{valid: true}, hasherStub{}, creator, newLogger())

	resp := h.Handle(context.Background(), validRequest())
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := resp.Body.(ErrorBody)
	if body.Error != ErrKindInvalidField || body.Field != "email" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestHandleReturnsCreatedAccountWithoutSecret(t *testing.T) {
	creator := &creatorStub{}
	h := NewHandler(&validatorStub{valid: true}, hasherStub{hash: []byte("$2a$fake")}, creator, newLogger())

	resp := h.Handle(context.Background(), validRequest())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	payload, ok := resp.Body.(AccountPayload)
	if !ok {
		t.Fatalf("expected AccountPayload, got %T", resp.Body)
	}
	if payload.ID != "account-1" || payload.Name != "any_name" || payload.Email != "any_email@gmail.com" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if creator.params == nil {
		t.Fatal("creator was not invoked")
	}
	if string(creator.params.PasswordHash) != "$2a$fake" {
		t.Fatalf("creator received wrong hash: %q", creator.params.PasswordHash)
	}
}

func TestErrorBodiesPairWithErrorStatuses(t *testing.T) {
	h := NewHandler(&validatorStub{valid: true}, hasherStub{}, &creatorStub{}, newLogger())
	requests := []Request{
		{},
		{Name: "n", Email: "a@b.com", Password: "p", PasswordConfirmation: "q"},
		validRequest(),
	}
	for _, req := range requests {
		resp := h.Handle(context.Background(), req)
		_, isErr := resp.Body.(ErrorBody)
		switch {
		case isErr && resp.StatusCode < 400:
			t.Fatalf("error body paired with status %d", resp.StatusCode)
		case !isErr && (resp.StatusCode < 200 || resp.StatusCode >= 300):
			t.Fatalf("success body paired with status %d", resp.StatusCode)
		}
	}
}
