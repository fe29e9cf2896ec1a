package models

import (
	"fmt"
	"strings"
)

// AVNeed identifies one selectable AV requirement on the event form
type AVNeed string

const (
	AVNeedStreamingRecording  AVNeed = "streamingRecording"
	AVNeedElectronicClassroom AVNeed = "electronicClassroom"
	AVNeedDocCamera           AVNeed = "docCamera"
	AVNeedNone                AVNeed = "none"
)

// EventTypes lists the selectable event types. "Other" requires the
// custom text field to be filled in.
var EventTypes = []string{
	"Study Session",
	"Interview",
	"Workshop",
	"Tutorial / Review",
	"Club Meeting",
	"Team Meeting",
	"Presentation",
	"Social / Networking",
	"Other",
}

// PriorityLevels lists the selectable priority levels. Priority is
// captured on the form but carries no weight in matching.
var PriorityLevels = []string{"Low", "Medium", "High"}

// Duration bounds for custom durations, in minutes.
const (
	DurationCustomMin = 30
	DurationCustomMax = 6 * 60
)

// DurationPresets are the quick-select durations, in minutes.
var DurationPresets = []int{30, 60, 90, 120, 180}

// EventFormData is a user's booking request. It is built fresh per
// booking attempt and consumed by the matcher and, on confirmation,
// by the booking service.
type EventFormData struct {
	EventName             string   `json:"eventName"`
	OrganizerName         string   `json:"organizerName"`
	PreferredDate         string   `json:"preferredDate"` // YYYY-MM-DD
	TimeSlot              string   `json:"timeSlot"`      // HH:MM, 24-hour
	DurationMinutes       int      `json:"durationMinutes"`
	GroupSize             int      `json:"groupSize"`
	EventType             string   `json:"eventType"`
	EventTypeCustom       string   `json:"eventTypeCustom,omitempty"`
	AVNeedsEnabled        bool     `json:"avNeedsEnabled"`
	AVNeeds               []AVNeed `json:"avNeeds,omitempty"`
	FurnitureNeedsEnabled bool     `json:"furnitureNeedsEnabled"`
	FurnitureNeeds        []string `json:"furnitureNeeds,omitempty"`
	AccessibilityRequired bool     `json:"accessibilityRequired"`
	PreferredBuilding     string   `json:"preferredBuilding,omitempty"`
	PriorityLevel         string   `json:"priorityLevel,omitempty"`
}

// RequestedAVNeeds returns the AV needs that were actually requested:
// nil when the AV toggle is off, and never includes "none" or duplicates.
func (f *EventFormData) RequestedAVNeeds() []AVNeed {
	if !f.AVNeedsEnabled {
		return nil
	}
	seen := make(map[AVNeed]struct{}, len(f.AVNeeds))
	var needs []AVNeed
	for _, need := range f.AVNeeds {
		if need == AVNeedNone {
			continue
		}
		if _, dup := seen[need]; dup {
			continue
		}
		seen[need] = struct{}{}
		needs = append(needs, need)
	}
	return needs
}

// RequestedFurnitureNeeds returns the furniture labels that were
// actually requested, or nil when the furniture toggle is off.
func (f *EventFormData) RequestedFurnitureNeeds() []string {
	if !f.FurnitureNeedsEnabled {
		return nil
	}
	var needs []string
	for _, label := range f.FurnitureNeeds {
		if label = strings.TrimSpace(label); label != "" {
			needs = append(needs, label)
		}
	}
	return needs
}

// EffectiveDuration returns the requested duration, or 60 minutes when
// the form left it unset.
func (f *EventFormData) EffectiveDuration() int {
	if f.DurationMinutes <= 0 {
		return 60
	}
	return f.DurationMinutes
}

// Validate checks the form for completeness before matching may run.
func (f *EventFormData) Validate() error {
	switch {
	case strings.TrimSpace(f.EventName) == "":
		return fmt.Errorf("event name is required")
	case strings.TrimSpace(f.OrganizerName) == "":
		return fmt.Errorf("organizer name is required")
	case strings.TrimSpace(f.PreferredDate) == "":
		return fmt.Errorf("preferred date is required")
	case strings.TrimSpace(f.TimeSlot) == "":
		return fmt.Errorf("time slot is required")
	case f.GroupSize <= 0:
		return fmt.Errorf("group size must be positive")
	case strings.TrimSpace(f.EventType) == "":
		return fmt.Errorf("event type is required")
	}
	if f.EventType == "Other" && strings.TrimSpace(f.EventTypeCustom) == "" {
		return fmt.Errorf("custom event type is required for \"Other\"")
	}
	if d := f.EffectiveDuration(); d < DurationCustomMin || d > DurationCustomMax {
		return fmt.Errorf("duration must be between %d and %d minutes", DurationCustomMin, DurationCustomMax)
	}
	return nil
}

// TimeSlot is one bookable start time
type TimeSlot struct {
	Value string `json:"value"` // HH:MM, 24-hour
	Label string `json:"label"` // 12-hour display form
}

// TimeSlots returns the 30-minute booking grid from 09:00 to 22:00.
func TimeSlots() []TimeSlot {
	var out []TimeSlot
	for h := 9; h <= 22; h++ {
		for _, m := range []int{0, 30} {
			if h == 22 && m == 30 {
				break
			}
			value := fmt.Sprintf("%02d:%02d", h, m)
			out = append(out, TimeSlot{Value: value, Label: formatTime12h(h, m)})
		}
	}
	return out
}

func formatTime12h(h, m int) string {
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}

// FormatTimeSlot renders an HH:MM value in its 12-hour display form.
// Unknown values are returned unchanged.
func FormatTimeSlot(value string) string {
	for _, slot := range TimeSlots() {
		if slot.Value == value {
			return slot.Label
		}
	}
	return value
}

// FormatDuration renders a minute count as "30m", "1h" or "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
