package domain

import "time"

// Account represents a registered user account.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
