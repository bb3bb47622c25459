package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"aeronest.backend/pkg/redis"
)

const (
	throttleAttemptsPrefix = "throttle:attempts:"
	throttleBlockPrefix    = "throttle:block:"
)

// RedisThrottleStore is a ThrottleStore shared across instances.
type RedisThrottleStore struct {
	policy ThrottlePolicy
}

// NewRedisThrottleStore creates a redis-backed throttle store.
// The package-level redis client must be initialized first.
func NewRedisThrottleStore(policy ThrottlePolicy) *RedisThrottleStore {
	return &RedisThrottleStore{policy: policy}
}

// Allow implements ThrottleStore.
func (s *RedisThrottleStore) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	ttl, err := redis.TTL(ctx, throttleBlockPrefix+key)
	if err != nil {
		return false, 0, fmt.Errorf("throttle block lookup: %w", err)
	}
	if ttl > 0 {
		return false, ttl, nil
	}
	return true, 0, nil
}

// RecordFailure implements ThrottleStore.
func (s *RedisThrottleStore) RecordFailure(ctx context.Context, key string) error {
	attemptsKey := throttleAttemptsPrefix + key

	count, err := redis.Incr(ctx, attemptsKey)
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if count == 1 {
		if err := redis.Expire(ctx, attemptsKey, s.policy.Window); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}

	if count >= int64(s.policy.MaxAttempts) {
		if err := redis.Set(ctx, throttleBlockPrefix+key, "1", s.policy.BlockDuration); err != nil {
			return fmt.Errorf("throttle block: %w", err)
		}
	}
	return nil
}

// Reset implements ThrottleStore.
func (s *RedisThrottleStore) Reset(ctx context.Context, key string) error {
	if err := redis.Del(ctx, throttleAttemptsPrefix+key); err != nil && !errors.Is(err, goredis.Nil) {
		return err
	}
	if err := redis.Del(ctx, throttleBlockPrefix+key); err != nil && !errors.Is(err, goredis.Nil) {
		return err
	}
	return nil
}
