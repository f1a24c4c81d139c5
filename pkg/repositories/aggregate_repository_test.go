package repositories

import (
	"context"
	"testing"
	"tftstats/internal/testutil"
	"tftstats/pkg/aggregator"
	"tftstats/pkg/tft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExport(t *testing.T, scope aggregator.Scope, units ...tft.Unit) *aggregator.Export {
	t.Helper()

	batch := aggregator.NewBatch(aggregator.BatchOptions{Scope: scope, ExpectedMatches: 100})
	champions := map[string]*aggregator.ChampionAggregator{}
	for _, unit := range units {
		champion, ok := champions[unit.CharacterID]
		if !ok {
			champion = aggregator.NewChampionAggregator(unit.CharacterID)
			champion.Initialize()
			champions[unit.CharacterID] = champion
		}
		require.NoError(t, champion.AddUnit(unit))
	}

	var seed []map[string]any
	for _, champion := range champions {
		data, err := champion.ToDict()
		require.NoError(t, err)
		seed = append(seed, data)
	}

	item := aggregator.NewItemAggregator(44)
	item.Initialize()
	for _, unit := range units {
		if unit.HasItem(44) {
			require.NoError(t, item.AddUnit(unit))
		}
	}
	itemData, err := item.ToDict()
	require.NoError(t, err)

	require.NoError(t, batch.Seed(seed, []map[string]any{itemData}))
	export, err := batch.Export()
	require.NoError(t, err)
	return export
}

func TestNewAggregateRepository(t *testing.T) {
	repository := NewAggregateRepository(&gorm.DB{})
	assert.NotNil(t, repository)
}

func TestAggregateRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	ctx := context.Background()
	repository := NewAggregateRepository(db)

	zed := tft.Unit{CharacterID: "TFT4_Zed", StarLevel: 2, Items: []int{11, 44}}
	jhin := tft.Unit{CharacterID: "TFT4_Jhin", StarLevel: 1, Items: []int{44}}

	require.NoError(t, repository.SaveExport(ctx, newExport(t, aggregator.ScopeWin, zed, zed, jhin)))

	champions, err := repository.GetChampions(ctx, aggregator.ScopeWin)
	require.NoError(t, err)
	require.Len(t, champions, 2)
	assert.Equal(t, "TFT4_Zed", champions[0]["champion_name"])
	assert.Equal(t, float64(2), champions[0]["occurrence"])

	// Stored rows seed a new aggregator.
	restored := aggregator.NewChampionAggregator("")
	require.NoError(t, restored.FromDict(champions[0]))
	assert.Equal(t, 2, restored.Occurrence())

	item, err := repository.GetItem(ctx, aggregator.ScopeWin, 44)
	require.NoError(t, err)
	assert.Equal(t, float64(44), item["item_id"])
	assert.Equal(t, map[string]any{"TFT4_Zed": float64(2), "TFT4_Jhin": float64(1)}, item["champion"])

	// A new export replaces the rows, keys it doesn't carry are removed.
	require.NoError(t, repository.SaveExport(ctx, newExport(t, aggregator.ScopeWin, jhin)))
	champion, err := repository.GetChampion(ctx, aggregator.ScopeWin, "TFT4_Jhin")
	require.NoError(t, err)
	assert.Equal(t, float64(1), champion["occurrence"])

	_, err = repository.GetChampion(ctx, aggregator.ScopeWin, "TFT4_Zed")
	assert.ErrorIs(t, err, ErrAggregateNotFound)

	champions, err = repository.GetChampions(ctx, aggregator.ScopeWin)
	require.NoError(t, err)
	require.Len(t, champions, 1)

	items, err := repository.GetItems(ctx, aggregator.ScopeWin)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"TFT4_Jhin": float64(1)}, items[0]["champion"])

	// Scopes don't share rows.
	champions, err = repository.GetChampions(ctx, aggregator.ScopeLose)
	require.NoError(t, err)
	assert.Empty(t, champions)

	_, err = repository.GetChampion(ctx, aggregator.ScopeLose, "TFT4_Zed")
	assert.ErrorIs(t, err, ErrAggregateNotFound)

	_, err = repository.GetItem(ctx, aggregator.ScopeWin, 99)
	assert.ErrorIs(t, err, ErrAggregateNotFound)

	// An empty export clears the scope.
	require.NoError(t, repository.SaveExport(ctx, &aggregator.Export{Scope: aggregator.ScopeWin}))
	champions, err = repository.GetChampions(ctx, aggregator.ScopeWin)
	require.NoError(t, err)
	assert.Empty(t, champions)

	items, err = repository.GetItems(ctx, aggregator.ScopeWin)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAggregateRepositoryClosedConnection(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.Close()

	repository := NewAggregateRepository(db)
	_, err = repository.GetChampions(context.Background(), aggregator.ScopeAll)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sql: database is closed")
}
