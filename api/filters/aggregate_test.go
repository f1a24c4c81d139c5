package filters

import (
	"testing"
	"tftstats/pkg/aggregator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChampionFilter(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		expected aggregator.Scope
		wantErr  bool
	}{
		{name: "default", scope: "", expected: aggregator.ScopeAll},
		{name: "win", scope: "win", expected: aggregator.ScopeWin},
		{name: "lose", scope: "lose", expected: aggregator.ScopeLose},
		{name: "invalid", scope: "top4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewChampionFilter(&ChampionURIParams{ChampionId: "TFT4_Zed"}, &AggregateQueryParams{Scope: tt.scope})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, filter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &ChampionFilter{ChampionId: "TFT4_Zed", Scope: tt.expected}, filter)
		})
	}
}

func TestNewItemFilter(t *testing.T) {
	filter, err := NewItemFilter(&ItemURIParams{ItemId: 44}, &AggregateQueryParams{Scope: "win"})
	require.NoError(t, err)
	assert.Equal(t, &ItemFilter{ItemId: 44, Scope: aggregator.ScopeWin}, filter)

	_, err = NewItemFilter(&ItemURIParams{ItemId: 44}, &AggregateQueryParams{Scope: "first"})
	assert.Error(t, err)
}
