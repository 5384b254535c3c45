package repository

import "errors"

// Sentinel errors shared by all repository implementations so the
// application layer can react without knowing the storage driver.
var (
	ErrNotFound      = errors.New("not found")
	ErrEmailTaken    = errors.New("email already taken")
	ErrUsernameTaken = errors.New("username already taken")
)
