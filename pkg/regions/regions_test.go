package regions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableRoute(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected RouteRegion
	}{
		{name: "na", region: "NA1", expected: Americas},
		{name: "oceania", region: "OC1", expected: Americas},
		{name: "korea", region: "KR", expected: Asia},
		{name: "japan", region: "JP1", expected: Asia},
		{name: "euw", region: "EUW1", expected: Europe},
		{name: "russia", region: "RU", expected: Europe},
		{name: "lowercase", region: "euw1", expected: Europe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routeRegion, err := DefaultTable.Route(tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, routeRegion)
		})
	}
}

func TestDefaultTableRouteUnknown(t *testing.T) {
	for _, region := range []string{"OC2", "", "ME1"} {
		_, err := DefaultTable.Route(region)

		var unknown *UnknownRegionError
		require.True(t, errors.As(err, &unknown), "region %q", region)
		assert.Equal(t, region, unknown.Region)
	}
}

func TestNewTable(t *testing.T) {
	table := NewTable(map[RouteRegion][]Region{Asia: {"vn2"}})

	routeRegion, err := table.Route("VN2")
	require.NoError(t, err)
	assert.Equal(t, Asia, routeRegion)

	_, err = table.Route("NA1")
	assert.Error(t, err)
}

func TestRegionListIsDisjoint(t *testing.T) {
	seen := map[Region]RouteRegion{}
	for routeRegion, list := range RegionList {
		for _, region := range list {
			previous, exists := seen[region]
			assert.False(t, exists, "%s listed under %s and %s", region, previous, routeRegion)
			seen[region] = routeRegion
		}
	}
	assert.Len(t, DefaultTable, len(seen))
}
