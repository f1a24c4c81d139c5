package cache

import (
	"context"
	"errors"
	"testing"
	"tftstats/internal/testutil"
	"tftstats/pkg/aggregator"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "tft:champion:win:TFT4_Zed", ChampionKey(aggregator.ScopeWin, "TFT4_Zed"))
	assert.Equal(t, "tft:item:all:44", ItemKey(aggregator.ScopeAll, 44))
}

func TestGetChampion(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		cached   *testutil.OperationResult[string]
		expected map[string]any
		errMsg   string
	}{
		{
			name:     "found",
			cached:   testutil.NewSuccessResult(`{"champion_name":"TFT4_Zed","occurrence":3}`),
			expected: map[string]any{"champion_name": "TFT4_Zed", "occurrence": float64(3)},
		},
		{
			name:   "redis error",
			cached: testutil.NewErrorResult[string]("connection refused"),
			errMsg: "connection refused",
		},
		{
			name:   "invalid json",
			cached: testutil.NewSuccessResult("{"),
			errMsg: "couldn't decode the cached key tft:champion:all:TFT4_Zed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redis := new(testutil.MockRedisClient)
			redis.On("Get", ctx, "tft:champion:all:TFT4_Zed").Return(tt.cached.Data, tt.cached.Err)

			cache := NewAggregateCache(redis, time.Hour)
			data, err := cache.GetChampion(ctx, aggregator.ScopeAll, "TFT4_Zed")

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, data)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, data)
			}
			testutil.VerifyAllMocks(t, redis)
		})
	}
}

func TestGetItemMiss(t *testing.T) {
	ctx := context.Background()

	redis := new(testutil.MockRedisClient)
	redis.On("Get", ctx, "tft:item:win:44").Return("", goredis.Nil)

	data, err := NewAggregateCache(redis, time.Hour).GetItem(ctx, aggregator.ScopeWin, 44)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, data)
	testutil.VerifyAllMocks(t, redis)
}

func TestSetItem(t *testing.T) {
	ctx := context.Background()

	redis := new(testutil.MockRedisClient)
	redis.On("Set", ctx, "tft:item:lose:44", `{"item_id":44}`, 2*time.Hour).Return(nil).Twice()

	cache := NewAggregateCache(redis, 2*time.Hour)
	require.NoError(t, cache.SetItem(ctx, aggregator.ScopeLose, map[string]any{"item_id": 44}))
	require.NoError(t, cache.SetItem(ctx, aggregator.ScopeLose, map[string]any{"item_id": float64(44)}))
	assert.Error(t, cache.SetItem(ctx, aggregator.ScopeLose, map[string]any{}))

	testutil.VerifyAllMocks(t, redis)
}

func TestSetExport(t *testing.T) {
	ctx := context.Background()

	export := &aggregator.Export{
		Scope:     aggregator.ScopeWin,
		Champions: map[string]map[string]any{"TFT4_Zed": {"champion_name": "TFT4_Zed"}},
		Items:     map[int]map[string]any{44: {"item_id": 44}},
	}

	redis := new(testutil.MockRedisClient)
	redis.On("Set", ctx, "tft:champion:win:TFT4_Zed", `{"champion_name":"TFT4_Zed"}`, time.Minute).Return(nil)
	redis.On("Set", ctx, "tft:item:win:44", `{"item_id":44}`, time.Minute).Return(nil)

	cache := NewAggregateCache(redis, time.Minute)
	require.NoError(t, cache.SetExport(ctx, export))
	testutil.VerifyAllMocks(t, redis)

	failing := new(testutil.MockRedisClient)
	failing.On("Set", ctx, mock.Anything, mock.Anything, time.Minute).Return(errors.New("connection refused"))

	err := NewAggregateCache(failing, time.Minute).SetExport(ctx, export)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
