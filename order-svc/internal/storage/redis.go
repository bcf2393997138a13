package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("key not found")

// KeyValue is the durable medium behind the profile store. A zero ttl keeps
// the value until it is overwritten.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type RedisKV struct {
	Client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{Client: client}
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set maps to SET, or SETEX when ttl is positive.
func (s *RedisKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl > 0 {
		return s.Client.SetEx(ctx, key, value, ttl).Err()
	}
	return s.Client.Set(ctx, key, value, 0).Err()
}

var _ KeyValue = (*RedisKV)(nil)
