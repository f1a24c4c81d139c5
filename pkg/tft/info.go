package tft

import (
	"tftstats/pkg/messages"
	"time"

	"github.com/elliotchance/pie/v2"
)

// Info holds the match wide facts and the participants.
type Info struct {
	GameDateTime int64
	GameLength   float64
	GameVersion  string
	QueueID      int
	SetNumber    int
	Participants []Participant

	patch         string
	hasPatch      bool
	rankedQueueID int
}

// PlacementInfo is a participant summary indexed by placement.
type PlacementInfo struct {
	Level                int
	LastRound            int
	GoldLeft             int
	TotalDamageToPlayers int
	TimeEliminated       float64
}

func (p *Parser) parseInfo(data map[string]any) (*Info, error) {
	r := NewReader("info", data)

	info := &Info{
		GameDateTime:  r.Int64("game_datetime"),
		GameLength:    r.Float("game_length"),
		GameVersion:   r.String("game_version"),
		QueueID:       r.Int("queue_id"),
		SetNumber:     r.Int("tft_set_number"),
		rankedQueueID: p.cfg.RankedQueueID,
	}
	rawParticipants := r.Objects("participants")
	if err := r.Err(); err != nil {
		return nil, err
	}

	info.Participants = make([]Participant, 0, len(rawParticipants))
	for i, rawParticipant := range rawParticipants {
		participant, err := parseParticipant(childPath("info", "participants", i), rawParticipant)
		if err != nil {
			return nil, err
		}
		info.Participants = append(info.Participants, participant)
	}

	// The patch is soft derived, the match is still valid without it.
	patch, err := p.derivePatch(info.GameVersion)
	if err != nil {
		p.cfg.Logger.Infof(messages.PatchNotMatched, info.GameVersion)
	} else {
		info.patch = patch
		info.hasPatch = true
	}

	return info, nil
}

// Patch returns the major.minor version the match was played on.
func (i *Info) Patch() (string, bool) {
	return i.patch, i.hasPatch
}

// GameTime converts the millisecond timestamp.
func (i *Info) GameTime() time.Time {
	return time.UnixMilli(i.GameDateTime).UTC()
}

func (i *Info) IsRanked() bool {
	return i.QueueID == i.rankedQueueID
}

// Partition splits the participants on GainedRating, keeping the in game order.
func (i *Info) Partition() (winners []Participant, losers []Participant) {
	winners = pie.Filter(i.Participants, Participant.GainedRating)
	losers = pie.Filter(i.Participants, func(p Participant) bool {
		return !p.GainedRating()
	})
	return winners, losers
}

func puuid(p Participant) string {
	return p.Puuid
}

func units(p Participant) []Unit {
	return p.Units
}

// WinPlayers returns the puuids that gained rating.
func (i *Info) WinPlayers() []string {
	winners, _ := i.Partition()
	return pie.Map(winners, puuid)
}

// LosePlayers returns the puuids that lost rating.
func (i *Info) LosePlayers() []string {
	_, losers := i.Partition()
	return pie.Map(losers, puuid)
}

func (i *Info) WinTraits() [][]string {
	winners, _ := i.Partition()
	return pie.Map(winners, Participant.TraitsUsed)
}

func (i *Info) LoseTraits() [][]string {
	_, losers := i.Partition()
	return pie.Map(losers, Participant.TraitsUsed)
}

func (i *Info) WinUnits() [][]Unit {
	winners, _ := i.Partition()
	return pie.Map(winners, units)
}

func (i *Info) LoseUnits() [][]Unit {
	_, losers := i.Partition()
	return pie.Map(losers, units)
}

// Placements maps each placement to the participant puuid.
func (i *Info) Placements() (map[int]string, error) {
	placements := make(map[int]string, len(i.Participants))
	for _, participant := range i.Participants {
		if previous, exists := placements[participant.Placement]; exists {
			return nil, &PlacementCollisionError{
				Placement: participant.Placement,
				First:     previous,
				Second:    participant.Puuid,
			}
		}
		placements[participant.Placement] = participant.Puuid
	}
	return placements, nil
}

// PlacementInfo indexes the participants summaries by placement.
// On duplicated placements the last participant wins, use Placements to detect it.
func (i *Info) PlacementInfo() map[int]PlacementInfo {
	output := make(map[int]PlacementInfo, len(i.Participants))
	for _, participant := range i.Participants {
		output[participant.Placement] = PlacementInfo{
			Level:                participant.Level,
			LastRound:            participant.LastRound,
			GoldLeft:             participant.GoldLeft,
			TotalDamageToPlayers: participant.TotalDamageToPlayers,
			TimeEliminated:       participant.TimeEliminated,
		}
	}
	return output
}
