package status

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/avolkov/dogshelter/internal/common"
)

// RedisStore keeps stage records in Redis. Records are plain GET/SET with no
// TTL: the store is an at-least-last-write-wins log of progress, not a
// durable audit trail.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, name string) (string, error) {
	v, err := s.client.Get(ctx, name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, name string, stage string) error {
	if err := s.client.Set(ctx, name, stage, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the underlying client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
