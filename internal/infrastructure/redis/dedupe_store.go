package redisstore

import (
	"context"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"

	"github.com/redis/go-redis/v9"
)

var _ application.EventDeduper = (*Store)(nil)

// Store remembers webhook event ids for TTL.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

func (s *Store) TryReserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.Client.SetNX(ctx, key, "1", s.TTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (s *Store) Release(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}
