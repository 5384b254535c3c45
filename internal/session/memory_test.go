package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/driftcode/minifeed/internal/domain/entity"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	u := &entity.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	rec, err := store.Create(ctx, u)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Token == "" {
		t.Fatal("empty token")
	}

	got, err := store.Get(ctx, rec.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "u1" || got.Username != "alice" || got.Email != "alice@example.com" {
		t.Fatalf("record = %+v, does not match user", got)
	}
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	u := &entity.User{ID: "u1", Username: "alice"}

	a, _ := store.Create(context.Background(), u)
	b, _ := store.Create(context.Background(), u)
	if a.Token == b.Token {
		t.Fatal("two sessions share a token")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	rec, err := store.Create(context.Background(), &entity.User{ID: "u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := store.Get(context.Background(), rec.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expired get: got %v, want ErrNoSession", err)
	}
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	rec, err := store.Create(ctx, &entity.User{ID: "u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Destroy(ctx, rec.Token); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(ctx, rec.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("get after destroy: got %v, want ErrNoSession", err)
	}

	// destroying an unknown token is a no-op
	if err := store.Destroy(ctx, "unknown"); err != nil {
		t.Fatalf("destroy unknown: %v", err)
	}
}
