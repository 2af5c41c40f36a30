package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

const themeKeyPrefix = "pref:theme:"

// PreferenceRepository implements repository.PreferenceRepository using Redis.
// The theme flag is the only durable state in the storefront; everything else
// lives for the session only.
type PreferenceRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreferenceRepository creates a new Redis-backed preference repository.
func NewPreferenceRepository(client *redis.Client, ttl time.Duration) *PreferenceRepository {
	return &PreferenceRepository{
		client: client,
		ttl:    ttl,
	}
}

// GetTheme returns the stored theme for a session.
func (r *PreferenceRepository) GetTheme(ctx context.Context, sessionID string) (string, error) {
	key := themeKeyPrefix + sessionID

	theme, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", apperrors.NotFound("theme preference", sessionID)
		}
		return "", fmt.Errorf("redis get theme: %w", err)
	}

	return theme, nil
}

// SetTheme stores the theme for a session with the configured TTL.
func (r *PreferenceRepository) SetTheme(ctx context.Context, sessionID, theme string) error {
	key := themeKeyPrefix + sessionID

	if err := r.client.Set(ctx, key, theme, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set theme: %w", err)
	}

	return nil
}
