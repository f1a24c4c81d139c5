package tft

import (
	"strings"
	"tftstats/pkg/regions"
)

// Metadata holds the match identity.
// The match id is encoded as <REGION>_<NUMBER>.
type Metadata struct {
	DataVersion  string
	MatchID      string
	Participants []string

	region      string
	matchNumber string
	hasRegion   bool
	routes      regions.Table
}

func (p *Parser) parseMetadata(data map[string]any) (*Metadata, error) {
	r := NewReader("metadata", data)

	metadata := &Metadata{
		DataVersion:  r.String("data_version"),
		MatchID:      r.String("match_id"),
		Participants: r.Strings("participants"),
		routes:       p.cfg.Routes,
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	// Split on the first separator, a empty prefix isn't a region.
	region, number, found := strings.Cut(metadata.MatchID, "_")
	if found && region != "" {
		metadata.region = region
		metadata.matchNumber = number
		metadata.hasRegion = true
	}

	return metadata, nil
}

// Region returns the region code prefix of the match id.
func (m *Metadata) Region() (string, bool) {
	return m.region, m.hasRegion
}

// MatchNumber returns the match id without the region.
func (m *Metadata) MatchNumber() (string, bool) {
	return m.matchNumber, m.hasRegion
}

// RouteRegion maps the region to the routing region serving it.
// Returns a DerivationError without a region and a UnknownRegionError for codes outside the table.
func (m *Metadata) RouteRegion() (regions.RouteRegion, error) {
	if !m.hasRegion {
		return "", &DerivationError{Field: "region", Input: m.MatchID}
	}
	return m.routes.Route(m.region)
}
