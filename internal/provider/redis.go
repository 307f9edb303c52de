package provider

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"go-hongbao/config"
)

func NewRedisClient(ctx context.Context, conf *config.Config) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Auth,
		DB:       conf.Redis.Database,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis client ping err: %w", err)
	}

	return client, func() { _ = client.Close() }, nil
}
