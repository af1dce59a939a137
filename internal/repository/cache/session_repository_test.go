package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/repository/cache"
)

// getTestRedis creates a Redis wrapper for integration tests
func getTestRedis(t *testing.T) *cache.Redis {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_SetGetDelete(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()
	key := "test:cache:" + uuid.NewString()

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val, "miss returns nil without error")

	require.NoError(t, repo.Set(ctx, key, []byte("hello"), time.Minute))

	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), val)

	require.NoError(t, repo.Delete(ctx, key))

	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewSessionRepository(cache.NewCacheRepository(r))
	ctx := context.Background()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := domain.NewSession(uuid.NewString(), now)
	s.Search = "riesling"
	s.Filters.Lakes = []string{"Seneca"}
	id := int64(3)
	s.SetSelected(&id)
	s.Panels.ListOpen = true

	require.NoError(t, repo.Save(ctx, s, time.Minute))
	t.Cleanup(func() { _ = repo.Delete(ctx, s.ID) })

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "riesling", got.Search)
	assert.Equal(t, []string{"Seneca"}, got.Filters.Lakes)
	assert.Equal(t, []string{}, got.Filters.Types)
	require.NotNil(t, got.SelectedID)
	assert.Equal(t, int64(3), *got.SelectedID)
	assert.True(t, got.Panels.ListOpen)
	assert.True(t, now.Equal(got.CreatedAt))

	ttl, err := r.Client().TTL(ctx, "session:"+s.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSessionRepository_NotFound(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewSessionRepository(cache.NewCacheRepository(r))
	ctx := context.Background()

	_, err := repo.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Удаление отсутствующей сессии не ошибка
	assert.NoError(t, repo.Delete(ctx, uuid.NewString()))
}

func TestSessionRepository_Expires(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewSessionRepository(cache.NewCacheRepository(r))
	ctx := context.Background()

	s := domain.NewSession(uuid.NewString(), time.Now())
	require.NoError(t, repo.Save(ctx, s, 50*time.Millisecond))

	time.Sleep(150 * time.Millisecond)

	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
