// Package session implements the server-side session store. A session is
// keyed by a server-generated token carried in a cookie; the stored record
// is a snapshot of the user taken at login and is deliberately not refreshed
// on later requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/driftcode/minifeed/internal/domain/entity"
)

var ErrNoSession = errors.New("session not found or expired")

// Record is what a session token resolves to.
type Record struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Store correlates tokens with authenticated users.
type Store interface {
	// Create snapshots the user under a fresh token and returns the record.
	Create(ctx context.Context, u *entity.User) (*Record, error)
	// Get resolves a token; ErrNoSession when absent or expired.
	Get(ctx context.Context, token string) (*Record, error)
	// Destroy removes the record. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
	// TTL reports the configured session lifetime, used for cookie expiry.
	TTL() time.Duration
}

func newRecord(u *entity.User) *Record {
	return &Record{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: time.Now().UTC(),
	}
}
