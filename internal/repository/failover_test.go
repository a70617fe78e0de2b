package repository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingCache errors on every call until recovered.
type failingCache struct {
	healthy bool
	backing *MemoryItemCache
}

func (c *failingCache) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	if !c.healthy {
		return nil, errors.New("cache down")
	}
	return c.backing.GetItem(ctx, id)
}

func (c *failingCache) SetItem(ctx context.Context, item *models.Item) error {
	if !c.healthy {
		return errors.New("cache down")
	}
	return c.backing.SetItem(ctx, item)
}

func (c *failingCache) InvalidateItem(ctx context.Context, id int64) error {
	if !c.healthy {
		return errors.New("cache down")
	}
	return c.backing.InvalidateItem(ctx, id)
}

func TestFailoverItemCache_PrimaryHealthy(t *testing.T) {
	logger := zerolog.New(io.Discard)
	primary := &failingCache{healthy: true, backing: NewMemoryItemCache(time.Minute)}
	fallback := NewMemoryItemCache(time.Minute)
	cache := NewFailoverItemCache(primary, fallback, &logger)
	ctx := context.Background()

	require.NoError(t, cache.SetItem(ctx, &models.Item{ID: 10, Name: "drill"}))

	got, err := cache.GetItem(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "drill", got.Name)

	// Fallback was never written to.
	missed, err := fallback.GetItem(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, missed)
}

func TestFailoverItemCache_FallsBack(t *testing.T) {
	logger := zerolog.New(io.Discard)
	primary := &failingCache{healthy: false, backing: NewMemoryItemCache(time.Minute)}
	fallback := NewMemoryItemCache(time.Minute)
	cache := NewFailoverItemCache(primary, fallback, &logger)
	ctx := context.Background()

	require.NoError(t, cache.SetItem(ctx, &models.Item{ID: 10, Name: "drill"}))

	got, err := cache.GetItem(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "drill", got.Name)

	// Once marked down, reads skip the primary even after it recovers,
	// until the cooldown passes.
	primary.healthy = true
	got, err = cache.GetItem(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestFailoverItemCache_InvalidateBothTiers(t *testing.T) {
	logger := zerolog.New(io.Discard)
	primary := &failingCache{healthy: true, backing: NewMemoryItemCache(time.Minute)}
	fallback := NewMemoryItemCache(time.Minute)
	cache := NewFailoverItemCache(primary, fallback, &logger)
	ctx := context.Background()

	item := &models.Item{ID: 10, Name: "drill"}
	require.NoError(t, primary.SetItem(ctx, item))
	require.NoError(t, fallback.SetItem(ctx, item))

	require.NoError(t, cache.InvalidateItem(ctx, 10))

	got, err := primary.GetItem(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = fallback.GetItem(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryItemCache(t *testing.T) {
	cache := NewMemoryItemCache(50 * time.Millisecond)
	ctx := context.Background()

	item := &models.Item{ID: 10, Name: "drill"}
	require.NoError(t, cache.SetItem(ctx, item))

	got, err := cache.GetItem(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)

	// The cache hands out copies, not the stored pointer.
	got.Name = "mutated"
	again, err := cache.GetItem(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "drill", again.Name)

	time.Sleep(80 * time.Millisecond)
	expired, err := cache.GetItem(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestMemoryItemCache_Invalidate(t *testing.T) {
	cache := NewMemoryItemCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetItem(ctx, &models.Item{ID: 10}))
	require.NoError(t, cache.InvalidateItem(ctx, 10))

	got, err := cache.GetItem(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}
