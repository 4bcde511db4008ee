package rank

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SubmissionLimiter caps how often one user can submit quiz results, a
// fixed-window counter per user in Redis.
type SubmissionLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

// DefaultSubmissionLimit is generous: it only exists to stop scripted
// grinding of the stats counters.
const (
	DefaultSubmissionLimit  = 30
	DefaultSubmissionWindow = time.Minute
)

// NewSubmissionLimiter builds a limiter on the shared client, nil without Redis.
func NewSubmissionLimiter(max int, window time.Duration) *SubmissionLimiter {
	client := GetRedisClient()
	if client == nil {
		return nil
	}
	return &SubmissionLimiter{rdb: client, max: max, window: window}
}

// NewSubmissionLimiterWithClient is for tests that bring their own client.
func NewSubmissionLimiterWithClient(client *redis.Client, max int, window time.Duration) *SubmissionLimiter {
	return &SubmissionLimiter{rdb: client, max: max, window: window}
}

// Allow reports whether the user may submit now, counting this call.
func (rl *SubmissionLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	key := fmt.Sprintf("ratelimit:submit:%s", userID)

	count, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if count == 1 {
		// First hit in this window starts the clock.
		if err := rl.rdb.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return count <= int64(rl.max), nil
}
