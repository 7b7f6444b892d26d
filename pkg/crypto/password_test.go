package crypto

import (
	"context"
	"testing"
)

func TestBcryptHashRoundTrip(t *testing.T) {
	hasher := Bcrypt{Cost: 4}
	hash, err := hasher.Hash(context.Background(), "any_password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if string(hash) == "any_password" {
		t.Fatal("hash must not equal plaintext")
	}
	if err := ComparePassword(hash, "any_password"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := ComparePassword(hash, "other_password"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestBcryptClampsInvalidCost(t *testing.T) {
	hasher := Bcrypt{Cost: 99}
	if _, err := hasher.Hash(context.Background(), "pw"); err != nil {
		t.Fatalf("expected cost to be clamped, got error: %v", err)
	}
}
