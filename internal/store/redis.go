package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-port-ops/internal/config"
)

type redisTokenStorage struct {
	client *redis.Client
	key    string
}

// NewRedisTokenStorage connects to redis and returns a [TokenStorage] keeping
// the token under "<prefix>token". The returned client must be closed by the
// caller.
func NewRedisTokenStorage(ctx context.Context, cfg config.Redis) (TokenStorage, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("error connecting redis at %s: %w", cfg.Addr, err)
	}

	return &redisTokenStorage{
		client: client,
		key:    cfg.Prefix + TokenKey,
	}, client, nil
}

func (r *redisTokenStorage) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error reading token from redis: %w", err)
	}

	return token, nil
}

func (r *redisTokenStorage) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("error writing token to redis: %w", err)
	}

	return nil
}

func (r *redisTokenStorage) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("error removing token from redis: %w", err)
	}

	return nil
}
