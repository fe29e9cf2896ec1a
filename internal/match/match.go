// Package match implements room filtering and ranking for booking requests.
//
// Matching runs in two stages: hard filters remove rooms from candidacy
// entirely, then the survivors are ordered by a score built from a
// capacity-fit component plus itemized AV bonuses.
package match

import (
	"sort"
	"strings"

	"github.com/roomease/roomease/internal/models"
)

// Weights configures the per-capability score bonuses. The exact values
// are heuristic, not load-bearing business rules.
type Weights struct {
	StreamingRecording  int
	ElectronicClassroom int
	DocCamera           int
}

// DefaultWeights are the standard bonus values.
var DefaultWeights = Weights{
	StreamingRecording:  10,
	ElectronicClassroom: 8,
	DocCamera:           6,
}

// Score breaks a room's ranking into its components. Fit is
// groupSize - capacity, so surplus capacity counts against the room
// and a tighter fit ranks higher.
type Score struct {
	Fit            int `json:"fit"`
	StreamingBonus int `json:"streamingBonus,omitempty"`
	ClassroomBonus int `json:"classroomBonus,omitempty"`
	DocCameraBonus int `json:"docCameraBonus,omitempty"`
}

// Total reduces the score to a single sortable number.
func (s Score) Total() int {
	return s.Fit + s.StreamingBonus + s.ClassroomBonus + s.DocCameraBonus
}

// Result pairs a candidate room with its score.
type Result struct {
	Room  models.Room `json:"room"`
	Score Score       `json:"score"`
}

// Match returns the rooms satisfying the form's hard constraints,
// ordered by descending score using the default weights. Ties keep
// catalog order. An exhausted match is an empty slice, never an error.
func Match(form models.EventFormData, rooms []models.Room) []Result {
	return MatchWithWeights(form, rooms, DefaultWeights)
}

// MatchWithWeights is Match with configurable bonus weights.
// Inputs are never mutated.
func MatchWithWeights(form models.EventFormData, rooms []models.Room, weights Weights) []Result {
	avNeeds := form.RequestedAVNeeds()
	furnitureNeeds := form.RequestedFurnitureNeeds()
	building := strings.TrimSpace(form.PreferredBuilding)

	results := make([]Result, 0, len(rooms))
	for _, room := range rooms {
		if !passesHardFilters(form, room, avNeeds, furnitureNeeds, building) {
			continue
		}
		results = append(results, Result{
			Room:  room,
			Score: scoreRoom(form, room, avNeeds, weights),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Total() > results[j].Score.Total()
	})
	return results
}

// Rooms is a convenience wrapper returning the matched rooms without
// their scores.
func Rooms(form models.EventFormData, rooms []models.Room) []models.Room {
	results := Match(form, rooms)
	out := make([]models.Room, 0, len(results))
	for _, r := range results {
		out = append(out, r.Room)
	}
	return out
}

func passesHardFilters(form models.EventFormData, room models.Room, avNeeds []models.AVNeed, furnitureNeeds []string, building string) bool {
	if room.Capacity < form.GroupSize {
		return false
	}
	if building != "" && room.Building != building {
		return false
	}
	for _, need := range avNeeds {
		if !roomSatisfiesAVNeed(room, need) {
			return false
		}
	}
	if len(furnitureNeeds) > 0 {
		labels := room.FurnitureLabelSet()
		for _, want := range furnitureNeeds {
			if _, ok := labels[want]; !ok {
				return false
			}
		}
	}
	return true
}

func roomSatisfiesAVNeed(room models.Room, need models.AVNeed) bool {
	switch need {
	case models.AVNeedStreamingRecording:
		return room.IsStreamingRecordingCapable()
	case models.AVNeedElectronicClassroom:
		return room.IsElectronicClassroom()
	case models.AVNeedDocCamera:
		return room.HasDocumentCamera()
	}
	return true
}

func scoreRoom(form models.EventFormData, room models.Room, avNeeds []models.AVNeed, weights Weights) Score {
	score := Score{Fit: form.GroupSize - room.Capacity}
	for _, need := range avNeeds {
		if !roomSatisfiesAVNeed(room, need) {
			continue
		}
		switch need {
		case models.AVNeedStreamingRecording:
			score.StreamingBonus = weights.StreamingRecording
		case models.AVNeedElectronicClassroom:
			score.ClassroomBonus = weights.ElectronicClassroom
		case models.AVNeedDocCamera:
			score.DocCameraBonus = weights.DocCamera
		}
	}
	return score
}
