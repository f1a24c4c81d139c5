package cache

import (
	"context"
	"errors"
	"fmt"
	"tftstats/pkg/aggregator"
	"tftstats/pkg/redis"
	"time"

	json "github.com/goccy/go-json"
)

// Default keys for the aggregates.
const (
	championKey = "tft:champion:%s:%s"
	itemKey     = "tft:item:%s:%d"
)

// ErrCacheMiss is returned when the key isn't cached.
var ErrCacheMiss = errors.New("cache miss")

// RedisClient is the subset of the redis client used by the cache.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// AggregateCache is the public interface for the cached aggregates.
type AggregateCache interface {
	GetChampion(ctx context.Context, scope aggregator.Scope, championName string) (map[string]any, error)
	GetItem(ctx context.Context, scope aggregator.Scope, itemID int) (map[string]any, error)
	SetChampion(ctx context.Context, scope aggregator.Scope, data map[string]any) error
	SetItem(ctx context.Context, scope aggregator.Scope, data map[string]any) error
	SetExport(ctx context.Context, export *aggregator.Export) error
}

// Create a redis cache client.
type aggregateCache struct {
	client RedisClient
	ttl    time.Duration
}

// NewAggregateCache creates a new instance of the aggregate cache.
func NewAggregateCache(client RedisClient, ttl time.Duration) AggregateCache {
	return &aggregateCache{
		client: client,
		ttl:    ttl,
	}
}

// ChampionKey is the cache key of a champion aggregate.
func ChampionKey(scope aggregator.Scope, championName string) string {
	return fmt.Sprintf(championKey, scope, championName)
}

// ItemKey is the cache key of a item aggregate.
func ItemKey(scope aggregator.Scope, itemID int) string {
	return fmt.Sprintf(itemKey, scope, itemID)
}

// GetChampion gets a champion aggregate.
// A missing key is ErrCacheMiss, other redis errors are returned as is.
func (ac *aggregateCache) GetChampion(ctx context.Context, scope aggregator.Scope, championName string) (map[string]any, error) {
	return ac.get(ctx, ChampionKey(scope, championName))
}

// GetItem gets a item aggregate.
func (ac *aggregateCache) GetItem(ctx context.Context, scope aggregator.Scope, itemID int) (map[string]any, error) {
	return ac.get(ctx, ItemKey(scope, itemID))
}

// SetChampion caches a exported champion aggregate.
func (ac *aggregateCache) SetChampion(ctx context.Context, scope aggregator.Scope, data map[string]any) error {
	championName, ok := data["champion_name"].(string)
	if !ok {
		return errors.New("champion aggregate without champion_name")
	}
	return ac.set(ctx, ChampionKey(scope, championName), data)
}

// SetItem caches a exported item aggregate.
func (ac *aggregateCache) SetItem(ctx context.Context, scope aggregator.Scope, data map[string]any) error {
	var itemID int
	switch id := data["item_id"].(type) {
	case int:
		itemID = id
	case float64:
		itemID = int(id)
	default:
		return errors.New("item aggregate without item_id")
	}
	return ac.set(ctx, ItemKey(scope, itemID), data)
}

// SetExport caches every aggregate of a export.
func (ac *aggregateCache) SetExport(ctx context.Context, export *aggregator.Export) error {
	for championName, data := range export.Champions {
		if err := ac.set(ctx, ChampionKey(export.Scope, championName), data); err != nil {
			return err
		}
	}

	for itemID, data := range export.Items {
		if err := ac.set(ctx, ItemKey(export.Scope, itemID), data); err != nil {
			return err
		}
	}

	return nil
}

func (ac *aggregateCache) get(ctx context.Context, key string) (map[string]any, error) {
	cached, err := ac.client.Get(ctx, key)
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cached), &data); err != nil {
		return nil, fmt.Errorf("couldn't decode the cached key %s: %w", key, err)
	}
	return data, nil
}

func (ac *aggregateCache) set(ctx context.Context, key string, data map[string]any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("couldn't encode the key %s: %w", key, err)
	}

	if err := ac.client.Set(ctx, key, string(encoded), ac.ttl); err != nil {
		return fmt.Errorf("couldn't cache the key %s: %w", key, err)
	}
	return nil
}
