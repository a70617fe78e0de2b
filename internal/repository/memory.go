package repository

import (
	"context"
	"sync"
	"time"

	"shareit/internal/models"
)

// MemoryItemCache is an in-process item cache used when Redis is disabled
// or as the failover fallback. Entries expire lazily on read.
type MemoryItemCache struct {
	items sync.Map
	ttl   time.Duration
}

type memoryEntry struct {
	item      *models.Item
	expiresAt time.Time
}

func NewMemoryItemCache(ttl time.Duration) *MemoryItemCache {
	return &MemoryItemCache{ttl: ttl}
}

func (r *MemoryItemCache) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	val, ok := r.items.Load(id)
	if !ok {
		return nil, nil
	}
	entry := val.(*memoryEntry)
	if time.Now().After(entry.expiresAt) {
		r.items.Delete(id)
		return nil, nil
	}
	copied := *entry.item
	return &copied, nil
}

func (r *MemoryItemCache) SetItem(ctx context.Context, item *models.Item) error {
	copied := *item
	r.items.Store(item.ID, &memoryEntry{item: &copied, expiresAt: time.Now().Add(r.ttl)})
	return nil
}

func (r *MemoryItemCache) InvalidateItem(ctx context.Context, id int64) error {
	r.items.Delete(id)
	return nil
}
