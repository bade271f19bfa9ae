package prefstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"cotacao_moedas/internal/feature/chart/usecase"
)

// PreferenceRedis implements usecase.PreferenceStore using Redis.
// Preferences never expire.
type PreferenceRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.PreferenceStore = (*PreferenceRedis)(nil)

// NewPreferenceRedis creates a new PreferenceRedis instance.
func NewPreferenceRedis(client *redis.Client, prefix string) *PreferenceRedis {
	return &PreferenceRedis{client: client, prefix: prefix}
}

func (r *PreferenceRedis) key(name string) string {
	return fmt.Sprintf("%s:%s", r.prefix, name)
}

// Get returns the stored value, or usecase.ErrPreferenceNotFound.
func (r *PreferenceRedis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", usecase.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// Set overwrites the stored value.
func (r *PreferenceRedis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
