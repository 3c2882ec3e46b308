package storage

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/AchilleasB/mindease/wellness-service/internal/config"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/domain"
	"github.com/AchilleasB/mindease/wellness-service/internal/core/ports"
	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// RedisStore persists values as plain Redis strings. Only SetWithTTL sets an expiry.
type RedisStore struct {
	client *redis.Client
	cb     *gobreaker.CircuitBreaker
}

var _ ports.KeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, logger *logging.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		cb:     config.NewCircuitBreaker(config.BreakerRedis, logger),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	var missing bool
	res, err := s.cb.Execute(func() (interface{}, error) {
		v, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			// absence is not a backend failure
			missing = true
			return nil, nil
		}
		return v, err
	})
	if err != nil {
		return nil, err
	}
	if missing {
		return nil, domain.ErrNotFound
	}
	return res.([]byte), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

func (s *RedisStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, key, value, ttl).Err()
	})
	return err
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, key).Err()
	})
	return err
}

func (s *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		keys := make([]string, 0)
		iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		return keys, iter.Err()
	})
	if err != nil {
		return nil, err
	}
	keys := res.([]string)
	sort.Strings(keys)
	return keys, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
