package aggregator

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"testing"
	"tftstats/pkg/tft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadMatch(t *testing.T, matchID string) *tft.Match {
	t.Helper()

	content, err := os.ReadFile("../tft/testdata/match.json")
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(content, &data))
	if matchID != "" {
		data["metadata"].(map[string]any)["match_id"] = matchID
	}

	match, err := tft.ParseMatch(data)
	require.NoError(t, err)
	return match
}

func TestParseScope(t *testing.T) {
	for name, expected := range map[string]Scope{"": ScopeAll, "all": ScopeAll, "win": ScopeWin, "lose": ScopeLose} {
		scope, err := ParseScope(name)
		require.NoError(t, err)
		assert.Equal(t, expected, scope)
	}

	_, err := ParseScope("top1")
	assert.Error(t, err)
}

func TestScopeUnits(t *testing.T) {
	match := loadMatch(t, "")

	assert.Len(t, ScopeAll.Units(match.Info), 23)
	assert.Len(t, ScopeWin.Units(match.Info), 10)
	assert.Len(t, ScopeLose.Units(match.Info), 13)
}

func TestBatchAddMatchWinners(t *testing.T) {
	batch := NewBatch(BatchOptions{Scope: ScopeWin})
	assert.True(t, batch.AddMatch(loadMatch(t, "")))

	stats := batch.Stats()
	assert.Equal(t, 1, stats.Matches)
	assert.Equal(t, 10, stats.Units)
	assert.Equal(t, 0, stats.SkippedUnits)

	zed, ok := batch.Champion("TFT4_Zed")
	require.True(t, ok)
	data, err := zed.ToDict()
	require.NoError(t, err)
	assert.Equal(t, 4, data["occurrence"])
	assert.Equal(t, map[string]int{"Slayer": 1}, data["chosen_dist"])
	assert.Equal(t, map[string]int{"[2, 11, 44]": 2, "[]": 1, "[13]": 1}, data["item_comb"])

	item, ok := batch.Item(19)
	require.True(t, ok)
	data, err = item.ToDict()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"TFT4_Vayne": 1, "TFT4_Kalista": 1}, data["champion"])
	assert.Equal(t, map[string]int{"[3, 19]": 2}, data["combination"])
	assert.Equal(t, map[string]int{"3": 2, "19": 2}, data["other_item"])

	item, ok = batch.Item(13)
	require.True(t, ok)
	data, err = item.ToDict()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"[]": 3}, data["combination"])

	_, ok = batch.Champion("TFT4_Jhin")
	assert.False(t, ok, "jhin is only played by losers")
}

func TestBatchSkipsDuplicatedMatches(t *testing.T) {
	batch := NewBatch(BatchOptions{})

	assert.True(t, batch.AddMatch(loadMatch(t, "NA1_1")))
	assert.False(t, batch.AddMatch(loadMatch(t, "NA1_1")))
	assert.True(t, batch.AddMatch(loadMatch(t, "NA1_2")))

	stats := batch.Stats()
	assert.Equal(t, 2, stats.Matches)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 46, stats.Units)
}

func TestBatchFilterFalsePositivesAreFolded(t *testing.T) {
	base := loadMatch(t, "NA1_0")

	// A undersized filter answers positive for most new ids.
	batch := NewBatch(BatchOptions{Scope: ScopeWin, ExpectedMatches: 10, FalsePositiveRate: 0.5})
	for i := 0; i < 2000; i++ {
		metadata := *base.Metadata
		metadata.MatchID = fmt.Sprintf("NA1_%d", i)
		match := *base
		match.Metadata = &metadata

		require.True(t, batch.AddMatch(&match), metadata.MatchID)
	}

	stats := batch.Stats()
	assert.Equal(t, 2000, stats.Matches)
	assert.Equal(t, 0, stats.Duplicates)
	assert.Equal(t, 2000*10, stats.Units)

	assert.False(t, batch.AddMatch(loadMatch(t, "NA1_1999")))
	assert.Equal(t, 1, batch.Stats().Duplicates)
}

func TestBatchExportAndSeed(t *testing.T) {
	batch := NewBatch(BatchOptions{Scope: ScopeLose})
	batch.AddMatch(loadMatch(t, "NA1_1"))

	export, err := batch.Export()
	require.NoError(t, err)
	assert.Equal(t, ScopeLose, export.Scope)
	require.Contains(t, export.Champions, "TFT4_Jhin")
	require.Contains(t, export.Items, 44)

	var champions, items []map[string]any
	for _, data := range export.Champions {
		champions = append(champions, data)
	}
	for _, data := range export.Items {
		items = append(items, data)
	}

	seeded := NewBatch(BatchOptions{Scope: ScopeLose})
	require.NoError(t, seeded.Seed(champions, items))

	reexport, err := seeded.Export()
	require.NoError(t, err)
	assert.Equal(t, export, reexport)

	seeded.AddMatch(loadMatch(t, "NA1_2"))
	jhin, ok := seeded.Champion("TFT4_Jhin")
	require.True(t, ok)
	assert.Equal(t, 2*export.Champions["TFT4_Jhin"]["occurrence"].(int), jhin.Occurrence())
}

func TestBatchSeedInvalid(t *testing.T) {
	batch := NewBatch(BatchOptions{})
	err := batch.Seed([]map[string]any{{"champion_name": "TFT4_Zed"}}, nil)
	assert.Error(t, err)
}

func TestBatchConcurrentAddMatch(t *testing.T) {
	matches := []*tft.Match{
		loadMatch(t, "NA1_1"), loadMatch(t, "NA1_2"), loadMatch(t, "NA1_3"), loadMatch(t, "NA1_4"),
	}

	batch := NewBatch(BatchOptions{})
	var wg sync.WaitGroup
	for _, match := range matches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batch.AddMatch(match)
		}()
	}
	wg.Wait()

	zed, ok := batch.Champion("TFT4_Zed")
	require.True(t, ok)
	assert.Equal(t, 4*8, zed.Occurrence())
}
