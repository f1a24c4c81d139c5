package aggregateservice

import (
	"context"
	"errors"
	"log"
	"tftstats/api/filters"
	"tftstats/pkg/cache"
	"tftstats/pkg/repositories"
	"time"
)

const AggregateMemoryCacheDuration = 15 * time.Minute

// MemCache is the in-memory layer in front of redis.
type MemCache interface {
	Get(key string) any
	Set(key string, value any, ttl time.Duration)
}

// AggregateService reads the exported aggregates, memory first, then redis, then the database.
type AggregateService struct {
	memCache   MemCache
	cache      cache.AggregateCache
	repository repositories.AggregateRepository
}

// AggregateServiceDeps is the dependency list for the aggregate service.
// The cache can be nil when redis is unavailable.
type AggregateServiceDeps struct {
	MemCache   MemCache
	Cache      cache.AggregateCache
	Repository repositories.AggregateRepository
}

// NewAggregateService creates a aggregate service.
func NewAggregateService(deps *AggregateServiceDeps) *AggregateService {
	return &AggregateService{
		memCache:   deps.MemCache,
		cache:      deps.Cache,
		repository: deps.Repository,
	}
}

// GetChampion gets the aggregate of a single champion.
func (as *AggregateService) GetChampion(ctx context.Context, filters *filters.ChampionFilter) (map[string]any, error) {
	key := cache.ChampionKey(filters.Scope, filters.ChampionId)
	if mem := as.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if as.cache != nil {
		cached, err := as.cache.GetChampion(ctx, filters.Scope, filters.ChampionId)
		if err == nil {
			as.memCache.Set(key, cached, AggregateMemoryCacheDuration)
			return cached, nil
		}
		logCacheError("read", key, err)
	}

	data, err := as.repository.GetChampion(ctx, filters.Scope, filters.ChampionId)
	if err != nil {
		return nil, err
	}

	// Populate the caches, a redis failure doesn't fail the request.
	as.memCache.Set(key, data, AggregateMemoryCacheDuration)
	if as.cache != nil {
		logCacheError("write", key, as.cache.SetChampion(ctx, filters.Scope, data))
	}

	return data, nil
}

// GetItem gets the aggregate of a single item.
func (as *AggregateService) GetItem(ctx context.Context, filters *filters.ItemFilter) (map[string]any, error) {
	key := cache.ItemKey(filters.Scope, filters.ItemId)
	if mem := as.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if as.cache != nil {
		cached, err := as.cache.GetItem(ctx, filters.Scope, filters.ItemId)
		if err == nil {
			as.memCache.Set(key, cached, AggregateMemoryCacheDuration)
			return cached, nil
		}
		logCacheError("read", key, err)
	}

	data, err := as.repository.GetItem(ctx, filters.Scope, filters.ItemId)
	if err != nil {
		return nil, err
	}

	as.memCache.Set(key, data, AggregateMemoryCacheDuration)
	if as.cache != nil {
		logCacheError("write", key, as.cache.SetItem(ctx, filters.Scope, data))
	}

	return data, nil
}

// GetChampions lists every champion aggregate of the scope.
// Only the memory layer is used, the list is read from the database.
func (as *AggregateService) GetChampions(ctx context.Context, filters *filters.ScopeFilter) ([]map[string]any, error) {
	key := "tft:champions:" + string(filters.Scope)
	if mem := as.memCache.Get(key); mem != nil {
		return mem.([]map[string]any), nil
	}

	data, err := as.repository.GetChampions(ctx, filters.Scope)
	if err != nil {
		return nil, err
	}

	as.memCache.Set(key, data, AggregateMemoryCacheDuration)
	return data, nil
}

// GetItems lists every item aggregate of the scope.
func (as *AggregateService) GetItems(ctx context.Context, filters *filters.ScopeFilter) ([]map[string]any, error) {
	key := "tft:items:" + string(filters.Scope)
	if mem := as.memCache.Get(key); mem != nil {
		return mem.([]map[string]any), nil
	}

	data, err := as.repository.GetItems(ctx, filters.Scope)
	if err != nil {
		return nil, err
	}

	as.memCache.Set(key, data, AggregateMemoryCacheDuration)
	return data, nil
}

// getFromMemCache retrieves a single aggregate from the memory.
func (as *AggregateService) getFromMemCache(key string) map[string]any {
	if mem := as.memCache.Get(key); mem != nil {
		return mem.(map[string]any)
	}
	return nil
}

// logCacheError logs a redis failure, misses are expected and skipped.
func logCacheError(operation, key string, err error) {
	if err == nil || errors.Is(err, cache.ErrCacheMiss) {
		return
	}
	log.Printf("Failed to %s the cached key %s: %v", operation, key, err)
}
