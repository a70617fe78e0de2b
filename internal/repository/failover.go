package repository

import (
	"context"
	"sync/atomic"
	"time"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// FailoverItemCache serves from the primary cache and falls back to the
// secondary when the primary errors. The primary is retried after a
// cooldown period.
type FailoverItemCache struct {
	primary   domain.ItemCache
	fallback  domain.ItemCache
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64
}

const recoveryInterval = time.Minute

func NewFailoverItemCache(primary, fallback domain.ItemCache, logger *zerolog.Logger) *FailoverItemCache {
	return &FailoverItemCache{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverItemCache) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	if r.primaryUsable() {
		item, err := r.primary.GetItem(ctx, id)
		if err == nil {
			return item, nil
		}
		r.markDown(err)
	}
	return r.fallback.GetItem(ctx, id)
}

func (r *FailoverItemCache) SetItem(ctx context.Context, item *models.Item) error {
	if r.primaryUsable() {
		if err := r.primary.SetItem(ctx, item); err != nil {
			r.markDown(err)
		} else {
			return nil
		}
	}
	return r.fallback.SetItem(ctx, item)
}

func (r *FailoverItemCache) InvalidateItem(ctx context.Context, id int64) error {
	// Invalidation goes to both tiers so a stale entry cannot survive a
	// failover in either direction.
	var primaryErr error
	if r.primaryUsable() {
		if primaryErr = r.primary.InvalidateItem(ctx, id); primaryErr != nil {
			r.markDown(primaryErr)
		}
	}
	return r.fallback.InvalidateItem(ctx, id)
}

func (r *FailoverItemCache) primaryUsable() bool {
	if !r.isDown.Load() {
		return true
	}
	last := time.Unix(0, r.lastCheck.Load())
	if time.Since(last) > recoveryInterval {
		r.isDown.Store(false)
		return true
	}
	return false
}

func (r *FailoverItemCache) markDown(err error) {
	r.logger.Error().Err(err).Msg("primary item cache failed, falling back to memory")
	r.isDown.Store(true)
	r.lastCheck.Store(time.Now().UnixNano())
}
