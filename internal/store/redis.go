package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 3 * time.Second

// RedisStore keeps the keys in Redis under a per-client namespace. Useful
// when several agent instances share a state backend.
type RedisStore struct {
	client    redis.UniversalClient
	namespace string
}

func NewRedisStore(client redis.UniversalClient, namespace string) *RedisStore {
	return &RedisStore{client: client, namespace: namespace}
}

func (s *RedisStore) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}

		return "", err
	}

	return value, nil
}

func (s *RedisStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *RedisStore) key(key string) string {
	return s.namespace + ":" + key
}
