// Package schedule provides booking time arithmetic and conflict detection
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roomease/roomease/internal/models"
)

// DefaultDurationMinutes is assumed when a booking carries no duration.
const DefaultDurationMinutes = 60

// TimeToMinutes converts an "HH:MM" 24-hour string to minutes since
// midnight.
func TimeToMinutes(value string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", value)
	}
	return h*60 + m, nil
}

// Overlaps reports whether the half-open intervals [startA, startA+durationA)
// and [startB, startB+durationB) intersect. Touching endpoints do not
// count as overlap.
func Overlaps(startA, durationA, startB, durationB int) bool {
	return startA < startB+durationB && startB < startA+durationA
}

// Slot identifies a proposed reservation of a room.
type Slot struct {
	RoomID          string
	Date            string // YYYY-MM-DD
	TimeSlot        string // HH:MM, 24-hour
	DurationMinutes int
}

// FindConflicts returns the existing bookings that overlap the proposed
// slot. Only bookings for the same room and date are compared. A booking
// whose ID equals excludeID is skipped, so that editing a booking never
// conflicts with itself. Bookings with unparseable times are ignored.
func FindConflicts(bookings []*models.Booking, slot Slot, excludeID string) []*models.Booking {
	start, err := TimeToMinutes(slot.TimeSlot)
	if err != nil {
		return nil
	}
	duration := slot.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	var conflicts []*models.Booking
	for _, b := range bookings {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if b.RoomID != slot.RoomID || b.PreferredDate != slot.Date {
			continue
		}
		existingStart, err := TimeToMinutes(b.TimeSlot)
		if err != nil {
			continue
		}
		existingDuration := b.DurationMinutes
		if existingDuration <= 0 {
			existingDuration = DefaultDurationMinutes
		}
		if Overlaps(existingStart, existingDuration, start, duration) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// HasConflict reports whether any existing booking overlaps the slot.
func HasConflict(bookings []*models.Booking, slot Slot, excludeID string) bool {
	return len(FindConflicts(bookings, slot, excludeID)) > 0
}
