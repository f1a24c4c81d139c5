package tft

import "fmt"

// Trait is a team wide synergy.
// Style: 0 = No style, 1 = Bronze, 2 = Silver, 3 = Gold, 4 = Chromatic.
type Trait struct {
	Name        string
	NumUnits    int
	Style       int
	TierCurrent int
	TierTotal   int
}

func parseTrait(entity string, data map[string]any) (Trait, error) {
	r := NewReader(entity, data)

	trait := Trait{
		Name:        r.String("name"),
		NumUnits:    r.Int("num_units"),
		Style:       r.Int("style"),
		TierCurrent: r.Int("tier_current"),
		TierTotal:   r.Int("tier_total"),
	}
	if err := r.Err(); err != nil {
		return Trait{}, err
	}

	return trait, nil
}

// IsActive is true when the trait has any style.
func (t Trait) IsActive() bool {
	return t.Style > 0
}

// TraitName renders the trait with its style, e.g. Cultist_3.
func (t Trait) TraitName() string {
	return fmt.Sprintf("%s_%d", t.Name, t.Style)
}
