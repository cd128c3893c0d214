package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

type payload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestCacheHelper_SetGet(t *testing.T) {
	helper := NewCacheHelper(newTestClient(t), "profile:")
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "id:1", payload{ID: 1, Name: "Jane"}, time.Minute))

	var got payload
	require.NoError(t, helper.Get(ctx, "id:1", &got))
	assert.Equal(t, payload{ID: 1, Name: "Jane"}, got)

	err := helper.Get(ctx, "id:2", &got)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheHelper_Delete(t *testing.T) {
	helper := NewCacheHelper(newTestClient(t), "profile:")
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "id:1", payload{ID: 1}, time.Minute))
	require.NoError(t, helper.Set(ctx, "id:2", payload{ID: 2}, time.Minute))

	require.NoError(t, helper.Delete(ctx, "id:1", "id:2"))

	var got payload
	assert.ErrorIs(t, helper.Get(ctx, "id:1", &got), ErrCacheNotFound)
	assert.ErrorIs(t, helper.Get(ctx, "id:2", &got), ErrCacheNotFound)
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	helper := NewCacheHelper(newTestClient(t), "exists:")
	ctx := context.Background()

	require.NoError(t, helper.Set(ctx, "email:a@x.com", true, time.Minute))
	require.NoError(t, helper.Set(ctx, "email:b@x.com", true, time.Minute))
	require.NoError(t, helper.Set(ctx, "user:1", true, time.Minute))

	require.NoError(t, helper.InvalidatePattern(ctx, "email:*"))

	var got bool
	assert.ErrorIs(t, helper.Get(ctx, "email:a@x.com", &got), ErrCacheNotFound)
	assert.ErrorIs(t, helper.Get(ctx, "email:b@x.com", &got), ErrCacheNotFound)
	assert.NoError(t, helper.Get(ctx, "user:1", &got), "other prefixes stay")
}

func TestCacheHelper_NilClient(t *testing.T) {
	helper := NewCacheHelper(nil, "profile:")
	ctx := context.Background()

	// Writes degrade gracefully, reads report unavailability
	assert.NoError(t, helper.Set(ctx, "id:1", payload{}, time.Minute))
	assert.NoError(t, helper.Delete(ctx, "id:1"))

	var got payload
	assert.ErrorIs(t, helper.Get(ctx, "id:1", &got), ErrCacheNotAvailable)
}

func TestCacheManager_HealthCheck(t *testing.T) {
	cm := NewCacheManager(newTestClient(t))
	assert.NoError(t, cm.HealthCheck(context.Background()))

	nilManager := NewCacheManager(nil)
	assert.ErrorIs(t, nilManager.HealthCheck(context.Background()), ErrCacheNotAvailable)
}
