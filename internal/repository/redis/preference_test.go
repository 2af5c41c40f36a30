package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

func setupTestRedis(t *testing.T) (*PreferenceRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewPreferenceRepository(client, 30*24*time.Hour)
	return repo, mr
}

func TestPreferenceRepository_GetNotFound(t *testing.T) {
	repo, _ := setupTestRedis(t)

	theme, err := repo.GetTheme(context.Background(), "sess-missing")
	assert.Empty(t, theme)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPreferenceRepository_SetAndGet(t *testing.T) {
	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.SetTheme(ctx, "sess-1", "dark"))

	assert.True(t, mr.Exists("pref:theme:sess-1"))

	theme, err := repo.GetTheme(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestPreferenceRepository_Overwrite(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.SetTheme(ctx, "sess-1", "dark"))
	require.NoError(t, repo.SetTheme(ctx, "sess-1", "light"))

	theme, err := repo.GetTheme(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}

func TestPreferenceRepository_TTLExpiry(t *testing.T) {
	repo, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.SetTheme(ctx, "sess-1", "dark"))

	mr.FastForward(31 * 24 * time.Hour)

	_, err := repo.GetTheme(ctx, "sess-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPreferenceRepository_SessionsAreIsolated(t *testing.T) {
	repo, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, repo.SetTheme(ctx, "sess-1", "dark"))

	_, err := repo.GetTheme(ctx, "sess-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
