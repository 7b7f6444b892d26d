package repository

import "errors"

// ErrNotFound indicates an entity was not located.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicateEmail indicates an account already exists for the email.
var ErrDuplicateEmail = errors.New("repository: email already registered")
