package tft

import (
	"fmt"
	"tftstats/pkg/regions"

	"github.com/mitchellh/copystructure"
)

// Match binds the metadata and the info of a single match.
type Match struct {
	Metadata *Metadata
	Info     *Info

	data map[string]any
}

// ParseMatch parses a match with the default parser.
func ParseMatch(data map[string]any) (*Match, error) {
	return defaultParser.ParseMatch(data)
}

// ParseMatch builds the full match tree or fails without a partial match.
func (p *Parser) ParseMatch(data map[string]any) (*Match, error) {
	r := NewReader("match", data)
	rawMetadata := r.Map("metadata")
	rawInfo := r.Map("info")
	if err := r.Err(); err != nil {
		return nil, err
	}

	metadata, err := p.parseMetadata(rawMetadata)
	if err != nil {
		return nil, err
	}

	info, err := p.parseInfo(rawInfo)
	if err != nil {
		return nil, err
	}

	dataCopy, err := copystructure.Copy(data)
	if err != nil {
		return nil, fmt.Errorf("couldn't copy the match %s: %w", metadata.MatchID, err)
	}

	return &Match{
		Metadata: metadata,
		Info:     info,
		data:     dataCopy.(map[string]any),
	}, nil
}

// ToDict returns a copy of the original mapping.
func (m *Match) ToDict() map[string]any {
	dataCopy, err := copystructure.Copy(m.data)
	if err != nil {
		// The mapping was already copied once on parse.
		panic(err)
	}
	return dataCopy.(map[string]any)
}

func (m *Match) MatchID() string {
	return m.Metadata.MatchID
}

func (m *Match) Region() (string, bool) {
	return m.Metadata.Region()
}

func (m *Match) RouteRegion() (regions.RouteRegion, error) {
	return m.Metadata.RouteRegion()
}

func (m *Match) Patch() (string, bool) {
	return m.Info.Patch()
}

func (m *Match) SetNumber() int {
	return m.Info.SetNumber
}

func (m *Match) IsRanked() bool {
	return m.Info.IsRanked()
}
