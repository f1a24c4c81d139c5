package aggregator

import (
	"slices"
	"strconv"
	"tftstats/pkg/tft"
)

// Star levels with their own breakdown.
var starLevels = []int{1, 2, 3}

// ChampionAggregator accumulates the units of a single champion.
// It starts uninitialized so a fresh aggregator is never mistaken for a stored one,
// call Initialize for a new champion or FromDict to continue a stored one.
// Not safe for concurrent use.
type ChampionAggregator struct {
	championName string
	state        State
	counters     *championCounters
}

type championCounters struct {
	occurrence int
	chosenDist Counter
	tierDist   Counter

	// Regardless of star level.
	item     Counter
	itemComb Counter

	// Indexed by star level.
	itemByStar     map[int]Counter
	itemCombByStar map[int]Counter
}

func newChampionCounters() *championCounters {
	counters := &championCounters{
		chosenDist:     Counter{},
		tierDist:       Counter{},
		item:           Counter{},
		itemComb:       Counter{},
		itemByStar:     make(map[int]Counter, len(starLevels)),
		itemCombByStar: make(map[int]Counter, len(starLevels)),
	}
	for _, star := range starLevels {
		counters.itemByStar[star] = Counter{}
		counters.itemCombByStar[star] = Counter{}
	}
	return counters
}

// NewChampionAggregator creates a uninitialized aggregator.
func NewChampionAggregator(championName string) *ChampionAggregator {
	return &ChampionAggregator{championName: championName}
}

func (a *ChampionAggregator) ChampionName() string {
	return a.championName
}

func (a *ChampionAggregator) State() State {
	return a.state
}

// Occurrence returns how many units were added, zero when uninitialized.
func (a *ChampionAggregator) Occurrence() int {
	if a.state != Initialized {
		return 0
	}
	return a.counters.occurrence
}

// Initialize sets every counter to empty, discarding any previous count.
func (a *ChampionAggregator) Initialize() {
	a.counters = newChampionCounters()
	a.state = Initialized
}

// AddUnit folds a unit of this champion into the counters.
// On error nothing is counted.
func (a *ChampionAggregator) AddUnit(unit tft.Unit) error {
	if a.state != Initialized {
		return &NotInitializedError{Kind: "champion", Key: a.championName}
	}

	if unit.CharacterID != a.championName {
		return &IdentityMismatchError{Kind: "champion_name", Expected: a.championName, Got: unit.CharacterID}
	}

	c := a.counters
	c.occurrence++
	c.tierDist.Inc(strconv.Itoa(unit.StarLevel))

	if unit.IsChosen() {
		c.chosenDist.Inc(unit.Chosen)
	}

	// Stars outside the breakdown only feed the overall counters.
	itemByStar := c.itemByStar[unit.StarLevel]
	itemCombByStar := c.itemCombByStar[unit.StarLevel]

	// Units built by hand may not be sorted, the combination key relies on it.
	items := unit.ItemList()
	slices.Sort(items)
	for _, item := range items {
		key := strconv.Itoa(item)
		c.item.Inc(key)
		if itemByStar != nil {
			itemByStar.Inc(key)
		}
	}

	combination := CombinationKey(items)
	c.itemComb.Inc(combination)
	if itemCombByStar != nil {
		itemCombByStar.Inc(combination)
	}

	return nil
}

// ToDict exports every counter as a plain mapping.
func (a *ChampionAggregator) ToDict() (map[string]any, error) {
	if a.state != Initialized {
		return nil, &NotInitializedError{Kind: "champion", Key: a.championName}
	}

	c := a.counters
	output := map[string]any{
		"champion_name": a.championName,
		"occurrence":    c.occurrence,
		"chosen_dist":   c.chosenDist.export(),
		"tier_dist":     c.tierDist.export(),
		"item":          c.item.export(),
		"item_comb":     c.itemComb.export(),
	}
	for _, star := range starLevels {
		output[itemKey(star)] = c.itemByStar[star].export()
		output[itemCombKey(star)] = c.itemCombByStar[star].export()
	}

	return output, nil
}

// FromDict restores the counters from a exported mapping and marks the aggregator initialized.
// Every key must be present, the counts aren't validated.
func (a *ChampionAggregator) FromDict(data map[string]any) error {
	r := tft.NewReader("champion aggregate", data)

	championName := r.String("champion_name")
	counters := &championCounters{
		occurrence:     r.Int("occurrence"),
		chosenDist:     readCounter(r, "chosen_dist"),
		tierDist:       readCounter(r, "tier_dist"),
		item:           readCounter(r, "item"),
		itemComb:       readCounter(r, "item_comb"),
		itemByStar:     make(map[int]Counter, len(starLevels)),
		itemCombByStar: make(map[int]Counter, len(starLevels)),
	}
	for _, star := range starLevels {
		counters.itemByStar[star] = readCounter(r, itemKey(star))
		counters.itemCombByStar[star] = readCounter(r, itemCombKey(star))
	}
	if err := r.Err(); err != nil {
		return err
	}

	a.championName = championName
	a.counters = counters
	a.state = Initialized
	return nil
}

// Exported names, item_1 and item_comb1.
func itemKey(star int) string {
	return "item_" + strconv.Itoa(star)
}

func itemCombKey(star int) string {
	return "item_comb" + strconv.Itoa(star)
}
