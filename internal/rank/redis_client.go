package rank

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// InitRedis connects the shared Redis client and verifies the connection.
func InitRedis(addr string, password string, db int) error {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	rdb = client
	return nil
}

// GetRedisClient returns the Redis client instance, nil when Redis is not
// configured. Callers fall back to Mongo reads in that case.
func GetRedisClient() *redis.Client {
	return rdb
}
