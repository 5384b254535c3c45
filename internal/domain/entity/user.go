package entity

import "time"

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash and never leaves the server.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
