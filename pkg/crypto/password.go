package crypto

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes plaintext using bcrypt at the default cost.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword compares plaintext to hashed secret.
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}

// Bcrypt is a password hasher with a configurable cost.
type Bcrypt struct {
	Cost int
}

// Hash one-way transforms plaintext. The context is accepted for interface
// compatibility; bcrypt itself is not cancellable.
func (b Bcrypt) Hash(_ context.Context, plain string) ([]byte, error) {
	cost := b.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(plain), cost)
}
