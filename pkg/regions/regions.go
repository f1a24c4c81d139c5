package regions

import (
	"fmt"
	"strings"
)

// Simple package containing the region list.
// Kept free of other imports so the parser and the services can share it.
// Create the types for clarity.
type (
	RouteRegion string
	Region      string
)

const (
	Americas RouteRegion = "AMERICAS"
	Asia     RouteRegion = "ASIA"
	Europe   RouteRegion = "EUROPE"
)

// UnknownRegionError is returned when a region code isn't part of the routing table.
type UnknownRegionError struct {
	Region string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("%s is not defined", e.Region)
}

// List of regions served by each routing region.
var RegionList = map[RouteRegion][]Region{
	Americas: {"NA1", "BR1", "LA1", "LA2", "OC1"},
	Asia:     {"KR", "JP1"},
	Europe:   {"EUN1", "EUW1", "TR1", "RU"},
}

// Table maps a region code to the routing region that serves it.
type Table map[Region]RouteRegion

// NewTable inverts a region list into a lookup table.
func NewTable(list map[RouteRegion][]Region) Table {
	table := make(Table)
	for routeRegion, subRegions := range list {
		for _, region := range subRegions {
			table[Region(strings.ToUpper(string(region)))] = routeRegion
		}
	}
	return table
}

// DefaultTable is built from RegionList.
var DefaultTable = NewTable(RegionList)

// Route returns the routing region of a region code.
// The lookup ignores case, unknown codes return a UnknownRegionError.
func (t Table) Route(region string) (RouteRegion, error) {
	routeRegion, exists := t[Region(strings.ToUpper(region))]
	if !exists {
		return "", &UnknownRegionError{Region: strings.ToUpper(region)}
	}
	return routeRegion, nil
}
