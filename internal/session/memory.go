package session

import (
	"context"
	"sync"
	"time"

	"github.com/driftcode/minifeed/internal/domain/entity"
)

// MemoryStore is the fallback when no redis address is configured. Sessions
// do not survive a restart. It is also what the tests run against.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	records map[string]memoryEntry
}

type memoryEntry struct {
	rec       Record
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, records: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(_ context.Context, u *entity.User) (*Record, error) {
	rec := newRecord(u)
	s.mu.Lock()
	s.records[rec.Token] = memoryEntry{rec: *rec, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return rec, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[token]
	if !ok {
		return nil, ErrNoSession
	}
	if time.Now().After(e.expiresAt) {
		delete(s.records, token)
		return nil, ErrNoSession
	}
	rec := e.rec
	return &rec, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.records, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) TTL() time.Duration { return s.ttl }

var _ Store = (*MemoryStore)(nil)
