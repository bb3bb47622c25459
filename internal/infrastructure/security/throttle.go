package security

import (
	"context"
	"time"
)

// ThrottlePolicy tunes login attempt limiting.
type ThrottlePolicy struct {
	MaxAttempts   int
	Window        time.Duration
	BlockDuration time.Duration
}

// DefaultThrottlePolicy mirrors the production login limits.
func DefaultThrottlePolicy() ThrottlePolicy {
	return ThrottlePolicy{
		MaxAttempts:   50,
		Window:        15 * time.Minute,
		BlockDuration: 30 * time.Minute,
	}
}

// APIRatePolicy caps general API traffic per client IP.
func APIRatePolicy() ThrottlePolicy {
	return ThrottlePolicy{
		MaxAttempts:   100,
		Window:        time.Minute,
		BlockDuration: time.Minute,
	}
}

// AdminRatePolicy allows the heavier back-office polling.
func AdminRatePolicy() ThrottlePolicy {
	return ThrottlePolicy{
		MaxAttempts:   200,
		Window:        time.Minute,
		BlockDuration: time.Minute,
	}
}

// ThrottleStore tracks failed attempts per key (normally an IP or
// an IP+email pair) and blocks a key once it exhausts the policy.
type ThrottleStore interface {
	// Allow reports whether the key may attempt now. When blocked it
	// also returns how long until the block lifts.
	Allow(ctx context.Context, key string) (bool, time.Duration, error)

	// RecordFailure counts one failed attempt against the key.
	RecordFailure(ctx context.Context, key string) error

	// Reset clears the key's counters after a successful attempt.
	Reset(ctx context.Context, key string) error
}
