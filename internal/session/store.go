// Package session persists refresh-token sessions so sign-out can tear a
// session down server-side: refresh only works while the token is still
// present in the store.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Store is what the auth service needs from a session backend; the redis
// implementation is swapped for an in-memory fake in tests.
type Store interface {
	Save(ctx context.Context, refreshToken, userID string, ttl time.Duration) error
	Check(ctx context.Context, refreshToken string) (string, error)
	Delete(ctx context.Context, refreshToken string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func key(token string) string { return "refresh_token:" + token }

func (s *redisStore) Save(ctx context.Context, refreshToken, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, key(refreshToken), userID, ttl).Err()
}

func (s *redisStore) Check(ctx context.Context, refreshToken string) (string, error) {
	val, err := s.client.Get(ctx, key(refreshToken)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisStore) Delete(ctx context.Context, refreshToken string) error {
	return s.client.Del(ctx, key(refreshToken)).Err()
}
