package providers

import (
	"context"
	"time"
)

// RateLimitStore is a shared attempt counter with per-key expiry, used to
// throttle logins across instances.
type RateLimitStore interface {
	// Increment bumps the counter for key and returns the new count. The
	// window is armed when the key is first created and must not be extended
	// by later increments.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)

	// TTL reports how long key has left before its window resets.
	TTL(ctx context.Context, key string) (time.Duration, error)
}
