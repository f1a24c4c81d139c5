package cache

import (
	"context"
	"sync"
	"time"
)

// MemCache is a in-memory cache with small TTL to minimize Redis calls.
type MemCache struct {
	entries       sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

type memCacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewMemCache creates a new memory cache, expired keys are dropped every cleanup interval.
func NewMemCache(cleanupInterval time.Duration) *MemCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(cleanupInterval),
		ctx:           ctx,
	}
	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *MemCache) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup(time.Now())
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup drops every key expired at the given time.
func (mc *MemCache) cleanup(now time.Time) {
	mc.entries.Range(func(key, value any) bool {
		if now.After(value.(*memCacheEntry).expiresAt) {
			mc.entries.Delete(key)
		}
		return true
	})
}

// Close shutdown the memory cache worker.
func (mc *MemCache) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns the value of a key, nil when missing or expired.
func (mc *MemCache) Get(key string) any {
	value, exists := mc.entries.Load(key)
	if !exists {
		return nil
	}

	entry := value.(*memCacheEntry)
	if time.Now().After(entry.expiresAt) {
		mc.entries.Delete(key)
		return nil
	}

	return entry.value
}

// Set a given key on the cache.
func (mc *MemCache) Set(key string, value any, ttl time.Duration) {
	mc.entries.Store(key, &memCacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}
