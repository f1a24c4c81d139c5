package aggregator

import (
	"fmt"
	"slices"
	"sync"
	"tftstats/pkg/messages"
	"tftstats/pkg/tft"

	"github.com/bits-and-blooms/bloom/v3"
)

// Scope selects which participants units are aggregated.
type Scope string

const (
	ScopeAll  Scope = "all"
	ScopeWin  Scope = "win"
	ScopeLose Scope = "lose"
)

// ParseScope validates a scope name, a empty name is ScopeAll.
func ParseScope(name string) (Scope, error) {
	switch Scope(name) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeWin, ScopeLose:
		return Scope(name), nil
	}
	return "", fmt.Errorf(messages.UnknownScopeMsg, name)
}

// Units returns the units of the participants in the scope.
func (s Scope) Units(info *tft.Info) []tft.Unit {
	var groups [][]tft.Unit
	switch s {
	case ScopeWin:
		groups = info.WinUnits()
	case ScopeLose:
		groups = info.LoseUnits()
	default:
		for _, participant := range info.Participants {
			groups = append(groups, participant.Units)
		}
	}

	var units []tft.Unit
	for _, group := range groups {
		units = append(units, group...)
	}
	return units
}

// BatchOptions configures a batch.
type BatchOptions struct {
	Scope Scope

	// Sizing of the seen matches filter.
	ExpectedMatches   uint
	FalsePositiveRate float64

	Logger tft.Logger
}

// BatchStats counts what a batch received.
type BatchStats struct {
	Matches      int
	Duplicates   int
	Units        int
	SkippedUnits int
}

// Export holds the exported mapping of every aggregator of a batch.
type Export struct {
	Scope     Scope
	Champions map[string]map[string]any
	Items     map[int]map[string]any
}

// Batch owns the aggregators of a single report run.
// All writes are serialized, so a batch can be fed from many goroutines.
type Batch struct {
	mu sync.Mutex

	scope     Scope
	champions map[string]*ChampionAggregator
	items     map[int]*ItemAggregator
	stats     BatchStats
	logger    tft.Logger

	// Matches already folded. The filter answers most lookups, its positives are confirmed on the set.
	seen    *bloom.BloomFilter
	seenIDs map[string]struct{}
}

// NewBatch creates a empty batch.
func NewBatch(opts BatchOptions) *Batch {
	if opts.Scope == "" {
		opts.Scope = ScopeAll
	}
	if opts.ExpectedMatches == 0 {
		opts.ExpectedMatches = 500000
	}
	if opts.FalsePositiveRate == 0 {
		opts.FalsePositiveRate = 0.001
	}

	return &Batch{
		scope:     opts.Scope,
		champions: make(map[string]*ChampionAggregator),
		items:     make(map[int]*ItemAggregator),
		logger:    opts.Logger,
		seen:      bloom.NewWithEstimates(opts.ExpectedMatches, opts.FalsePositiveRate),
		seenIDs:   make(map[string]struct{}),
	}
}

func (b *Batch) Scope() Scope {
	return b.scope
}

// Seed restores previously exported aggregators, so the run continues their counts.
func (b *Batch) Seed(champions []map[string]any, items []map[string]any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, data := range champions {
		champion := NewChampionAggregator("")
		if err := champion.FromDict(data); err != nil {
			return fmt.Errorf("couldn't seed the champion aggregate: %w", err)
		}
		b.champions[champion.ChampionName()] = champion
	}

	for _, data := range items {
		item := NewItemAggregator(0)
		if err := item.FromDict(data); err != nil {
			return fmt.Errorf("couldn't seed the item aggregate: %w", err)
		}
		b.items[item.ItemID()] = item
	}

	return nil
}

// AddMatch folds the units of the match in scope.
// Returns false when the match was already seen.
func (b *Batch) AddMatch(match *tft.Match) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	matchID := match.MatchID()
	if b.seen.TestString(matchID) {
		if _, exists := b.seenIDs[matchID]; exists {
			b.stats.Duplicates++
			return false
		}
	}
	b.seen.AddString(matchID)
	b.seenIDs[matchID] = struct{}{}
	b.stats.Matches++

	for _, unit := range b.scope.Units(match.Info) {
		if err := b.addUnit(unit); err != nil {
			b.stats.SkippedUnits++
			if b.logger != nil {
				b.logger.Infof(messages.SkippedUnitMsg, unit.CharacterID, matchID, err)
			}
			continue
		}
		b.stats.Units++
	}

	return true
}

// Feed the champion and each distinct item of the unit.
func (b *Batch) addUnit(unit tft.Unit) error {
	champion, exists := b.champions[unit.CharacterID]
	if !exists {
		champion = NewChampionAggregator(unit.CharacterID)
		champion.Initialize()
		b.champions[unit.CharacterID] = champion
	}
	if err := champion.AddUnit(unit); err != nil {
		return err
	}

	items := unit.ItemList()
	slices.Sort(items)
	for _, itemID := range slices.Compact(items) {
		item, exists := b.items[itemID]
		if !exists {
			item = NewItemAggregator(itemID)
			item.Initialize()
			b.items[itemID] = item
		}
		if err := item.AddUnit(unit); err != nil {
			return err
		}
	}

	return nil
}

func (b *Batch) Stats() BatchStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stats
}

// Champion returns the aggregator of a champion, if any unit was added.
func (b *Batch) Champion(championName string) (*ChampionAggregator, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	champion, exists := b.champions[championName]
	return champion, exists
}

// Item returns the aggregator of a item, if any unit carried it.
func (b *Batch) Item(itemID int) (*ItemAggregator, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	item, exists := b.items[itemID]
	return item, exists
}

// Export returns the mapping of every aggregator.
func (b *Batch) Export() (*Export, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	export := &Export{
		Scope:     b.scope,
		Champions: make(map[string]map[string]any, len(b.champions)),
		Items:     make(map[int]map[string]any, len(b.items)),
	}

	for championName, champion := range b.champions {
		data, err := champion.ToDict()
		if err != nil {
			return nil, err
		}
		export.Champions[championName] = data
	}

	for itemID, item := range b.items {
		data, err := item.ToDict()
		if err != nil {
			return nil, err
		}
		export.Items[itemID] = data
	}

	return export, nil
}
