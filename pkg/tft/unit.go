package tft

import (
	"slices"
)

// Unit is a single fielded champion of a participant.
// Rarity is the unit cost minus one, StarLevel is the unit tier.
type Unit struct {
	CharacterID string
	Name        string
	Chosen      string
	Rarity      int
	Cost        int
	StarLevel   int

	// Sorted ascending, duplicated items are kept.
	Items []int
}

// NewUnit builds a unit from its raw mapping.
func NewUnit(data map[string]any) (Unit, error) {
	return parseUnit("unit", data)
}

func parseUnit(entity string, data map[string]any) (Unit, error) {
	r := NewReader(entity, data)

	unit := Unit{
		CharacterID: r.String("character_id"),
		Name:        r.OptionalString("name"),
		Chosen:      r.OptionalString("chosen"),
		Rarity:      r.Int("rarity"),
		StarLevel:   r.Int("tier"),
		Items:       r.Ints("items"),
	}
	if err := r.Err(); err != nil {
		return Unit{}, err
	}

	unit.Cost = unit.Rarity + 1
	slices.Sort(unit.Items)

	return unit, nil
}

// IsChosen reports if the unit carries a chosen trait.
func (u Unit) IsChosen() bool {
	return u.Chosen != ""
}

// HasItem reports if the item is equipped at least once.
func (u Unit) HasItem(itemID int) bool {
	_, found := slices.BinarySearch(u.Items, itemID)
	return found
}

// ItemList returns a copy of the sorted items.
func (u Unit) ItemList() []int {
	return slices.Clone(u.Items)
}
