package aggregator

import (
	"slices"
	"strconv"
	"tftstats/pkg/tft"
)

// ItemAggregator accumulates the units carrying a single item.
// Same lifecycle as ChampionAggregator.
type ItemAggregator struct {
	itemID   int
	state    State
	counters *itemCounters
}

type itemCounters struct {
	champion    Counter
	combination Counter
	otherItem   Counter
}

// NewItemAggregator creates a uninitialized aggregator.
func NewItemAggregator(itemID int) *ItemAggregator {
	return &ItemAggregator{itemID: itemID}
}

func (a *ItemAggregator) ItemID() int {
	return a.itemID
}

func (a *ItemAggregator) State() State {
	return a.state
}

// Initialize sets every counter to empty, discarding any previous count.
func (a *ItemAggregator) Initialize() {
	a.counters = &itemCounters{
		champion:    Counter{},
		combination: Counter{},
		otherItem:   Counter{},
	}
	a.state = Initialized
}

// AddUnit folds a unit carrying this item into the counters.
// The unit isn't modified, a single occurrence of the item is removed from a copy of its items.
func (a *ItemAggregator) AddUnit(unit tft.Unit) error {
	if a.state != Initialized {
		return &NotInitializedError{Kind: "item", Key: strconv.Itoa(a.itemID)}
	}

	others := unit.ItemList()
	slices.Sort(others)
	index := slices.Index(others, a.itemID)
	if index < 0 {
		return &IdentityMismatchError{Kind: "item_id", Expected: strconv.Itoa(a.itemID), Got: CombinationKey(others)}
	}
	others = slices.Delete(others, index, index+1)

	c := a.counters
	c.champion.Inc(unit.CharacterID)
	c.combination.Inc(CombinationKey(others))
	for _, item := range others {
		c.otherItem.Inc(strconv.Itoa(item))
	}

	return nil
}

// ToDict exports every counter as a plain mapping.
func (a *ItemAggregator) ToDict() (map[string]any, error) {
	if a.state != Initialized {
		return nil, &NotInitializedError{Kind: "item", Key: strconv.Itoa(a.itemID)}
	}

	return map[string]any{
		"item_id":     a.itemID,
		"champion":    a.counters.champion.export(),
		"combination": a.counters.combination.export(),
		"other_item":  a.counters.otherItem.export(),
	}, nil
}

// FromDict restores the counters from a exported mapping and marks the aggregator initialized.
func (a *ItemAggregator) FromDict(data map[string]any) error {
	r := tft.NewReader("item aggregate", data)

	itemID := r.Int("item_id")
	counters := &itemCounters{
		champion:    readCounter(r, "champion"),
		combination: readCounter(r, "combination"),
		otherItem:   readCounter(r, "other_item"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	a.itemID = itemID
	a.counters = counters
	a.state = Initialized
	return nil
}
