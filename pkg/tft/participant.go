package tft

import (
	"fmt"

	"github.com/elliotchance/pie/v2"
	"github.com/mitchellh/copystructure"
)

// Last placement that still gains rating.
const GainedRatingCutoff = 4

// Participant is the result of one player in a match.
type Participant struct {
	Puuid                string
	Placement            int
	GoldLeft             int
	Level                int
	LastRound            int
	PlayersEliminated    int
	TimeEliminated       float64
	TotalDamageToPlayers int

	// Opaque, kept as received.
	Companion map[string]any

	Traits []Trait
	Units  []Unit
}

func parseParticipant(entity string, data map[string]any) (Participant, error) {
	r := NewReader(entity, data)

	participant := Participant{
		Puuid:                r.String("puuid"),
		Placement:            r.Int("placement"),
		GoldLeft:             r.Int("gold_left"),
		Level:                r.Int("level"),
		LastRound:            r.Int("last_round"),
		PlayersEliminated:    r.Int("players_eliminated"),
		TimeEliminated:       r.Float("time_eliminated"),
		TotalDamageToPlayers: r.Int("total_damage_to_players"),
	}
	companion := r.Map("companion")
	rawTraits := r.Objects("traits")
	rawUnits := r.Objects("units")
	if err := r.Err(); err != nil {
		return Participant{}, err
	}

	companionCopy, err := copystructure.Copy(companion)
	if err != nil {
		return Participant{}, fmt.Errorf("couldn't copy the companion of %s: %w", entity, err)
	}
	participant.Companion = companionCopy.(map[string]any)

	participant.Traits = make([]Trait, 0, len(rawTraits))
	for i, rawTrait := range rawTraits {
		trait, err := parseTrait(childPath(entity, "traits", i), rawTrait)
		if err != nil {
			return Participant{}, err
		}
		participant.Traits = append(participant.Traits, trait)
	}

	participant.Units = make([]Unit, 0, len(rawUnits))
	for i, rawUnit := range rawUnits {
		unit, err := parseUnit(childPath(entity, "units", i), rawUnit)
		if err != nil {
			return Participant{}, err
		}
		participant.Units = append(participant.Units, unit)
	}

	return participant, nil
}

// GainedRating is true for the top half of the lobby.
func (p Participant) GainedRating() bool {
	return p.Placement <= GainedRatingCutoff
}

// TraitsUsed returns the active traits as <name>_<style>.
// Inactive traits are left out.
func (p Participant) TraitsUsed() []string {
	active := pie.Filter(p.Traits, Trait.IsActive)
	return pie.Map(active, Trait.TraitName)
}
