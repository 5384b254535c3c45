package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/pkg/helpers"
)

func sessionKey(token string) string {
	return "session:" + token
}

// RedisStore keeps session records as JSON values with a TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, u *entity.User) (*Record, error) {
	rec := newRecord(u)
	if err := helpers.RedisSetJSON(ctx, s.rdb, sessionKey(rec.Token), rec, s.ttl); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Record, error) {
	var rec Record
	ok, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(token), &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoSession
	}
	return &rec, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return helpers.RedisDel(ctx, s.rdb, sessionKey(token))
}

func (s *RedisStore) TTL() time.Duration { return s.ttl }

var _ Store = (*RedisStore)(nil)
