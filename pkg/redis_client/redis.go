package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// Connect establishes the shared redis connection used by the board cache.
func Connect(address string, password string, database int) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}
