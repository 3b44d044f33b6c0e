package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis client and pings it. On failure the client is closed
// and nil is returned with the error, so callers can fall back to in-memory
// stores.
func Connect(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
