package rank

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:points"

// Entry is one leaderboard row: a user id and their total points.
type Entry struct {
	UserID string
	Points int
}

// Leaderboard is the Redis-backed points ranking. It is a cache over the
// stats collection; Rebuild repopulates it from Mongo after a cache loss.
type Leaderboard struct {
	rdb *redis.Client
}

// NewLeaderboard builds a leaderboard on the shared client. Returns nil when
// Redis is unavailable so callers can skip the cache path.
func NewLeaderboard() *Leaderboard {
	client := GetRedisClient()
	if client == nil {
		return nil
	}
	return &Leaderboard{rdb: client}
}

// NewLeaderboardWithClient is for tests that bring their own client.
func NewLeaderboardWithClient(client *redis.Client) *Leaderboard {
	return &Leaderboard{rdb: client}
}

// AddPoints bumps a user's score after a submission.
func (l *Leaderboard) AddPoints(ctx context.Context, userID string, points int) error {
	if err := l.rdb.ZIncrBy(ctx, leaderboardKey, float64(points), userID).Err(); err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}
	return nil
}

// Top returns the highest-scoring users, best first.
func (l *Leaderboard) Top(ctx context.Context, n int) ([]Entry, error) {
	raw, err := l.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, z := range raw {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{UserID: member, Points: int(z.Score)})
	}
	return entries, nil
}

// Rebuild replaces the cached ranking wholesale, used when the zset is empty
// or stale relative to Mongo.
func (l *Leaderboard) Rebuild(ctx context.Context, entries []Entry) error {
	pipe := l.rdb.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	for _, e := range entries {
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(e.Points), Member: e.UserID})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}
	return nil
}

// Size returns the number of ranked users.
func (l *Leaderboard) Size(ctx context.Context) (int64, error) {
	return l.rdb.ZCard(ctx, leaderboardKey).Result()
}
