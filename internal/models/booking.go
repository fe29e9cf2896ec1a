package models

import (
	"strings"
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

// BookingStatusConfirmed is currently the only status a booking can hold.
const BookingStatusConfirmed BookingStatus = "Confirmed"

// Booking is a confirmed reservation. Event and room fields are
// denormalized snapshots taken at creation time; later catalog changes
// do not retroactively affect existing bookings.
type Booking struct {
	ID                 string        `json:"id"`
	Status             BookingStatus `json:"status"`
	ConfirmationNumber string        `json:"confirmationNumber"`
	CreatedAt          time.Time     `json:"createdAt"`

	// Event snapshot
	EventName       string `json:"eventName"`
	OrganizerName   string `json:"organizerName"`
	EventType       string `json:"eventType"`
	PreferredDate   string `json:"preferredDate"` // YYYY-MM-DD
	TimeSlot        string `json:"timeSlot"`      // HH:MM, 24-hour
	DurationMinutes int    `json:"durationMinutes"`
	GroupSize       int    `json:"groupSize"`

	// Room snapshot
	RoomID          string   `json:"roomId"`
	RoomName        string   `json:"roomName"`
	Building        string   `json:"building"`
	Capacity        int      `json:"capacity"`
	FurnitureLabels string   `json:"furnitureLabels"`
	AVBadges        []string `json:"avBadges"`
}

// BookingUpdate carries the schedule fields that may change after
// creation. Nil fields are left untouched; identity and room fields
// can never be changed through an update.
type BookingUpdate struct {
	EventName       *string `json:"eventName,omitempty"`
	OrganizerName   *string `json:"organizerName,omitempty"`
	PreferredDate   *string `json:"preferredDate,omitempty"`
	TimeSlot        *string `json:"timeSlot,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	GroupSize       *int    `json:"groupSize,omitempty"`
}

// Apply merges the update into the booking, touching only the mutable
// schedule fields.
func (b *Booking) Apply(update BookingUpdate) {
	if update.EventName != nil {
		b.EventName = *update.EventName
	}
	if update.OrganizerName != nil {
		b.OrganizerName = *update.OrganizerName
	}
	if update.PreferredDate != nil {
		b.PreferredDate = *update.PreferredDate
	}
	if update.TimeSlot != nil {
		b.TimeSlot = *update.TimeSlot
	}
	if update.DurationMinutes != nil {
		b.DurationMinutes = *update.DurationMinutes
	}
	if update.GroupSize != nil {
		b.GroupSize = *update.GroupSize
	}
}

// AVBadgesForRoom returns the display badges snapshotted onto a booking
// for the room's AV capabilities.
func AVBadgesForRoom(room Room) []string {
	out := []string{}
	if room.IsStreamingRecordingCapable() {
		out = append(out, "Streaming & Recording Ready")
	}
	if room.IsElectronicClassroom() {
		out = append(out, "Electronic Classroom")
	}
	if room.HasDocumentCamera() {
		out = append(out, "Document Camera Available")
	}
	return out
}

// FurnitureLineForRoom returns the single-line furniture summary
// snapshotted onto a booking, labels joined with a bullet.
func FurnitureLineForRoom(room Room) string {
	short, _ := FormatFurniture(room.Furniture)
	if short == "" {
		return ""
	}
	return strings.Join(strings.Split(short, "; "), " • ")
}
