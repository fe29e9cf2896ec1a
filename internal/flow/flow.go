// Package flow implements the booking flow as a synchronous state
// machine: event entry, room results, confirmation. All rendering is
// left to the caller; the flow only owns state and transitions.
package flow

import (
	"context"
	"fmt"

	"github.com/roomease/roomease/internal/match"
	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/schedule"
	"github.com/roomease/roomease/internal/service"
)

// Step identifies the current position in the booking flow.
type Step int

const (
	StepEventEntry Step = iota + 1
	StepRoomResults
	StepConfirmed
)

// String returns the string representation of a step
func (s Step) String() string {
	switch s {
	case StepEventEntry:
		return "event-entry"
	case StepRoomResults:
		return "room-results"
	case StepConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// ErrWrongStep is returned when a transition is attempted from the
// wrong state.
type ErrWrongStep struct {
	Want Step
	Got  Step
}

func (e *ErrWrongStep) Error() string {
	return fmt.Sprintf("expected step %s, currently at %s", e.Want, e.Got)
}

// Flow drives one booking attempt from form entry to confirmation.
type Flow struct {
	rooms    []models.Room
	bookings *service.BookingService

	step    Step
	form    models.EventFormData
	results []match.Result
	booking *models.Booking
	errMsg  string
}

// New creates a flow over the given room catalog and booking service,
// starting at event entry.
func New(rooms []models.Room, bookings *service.BookingService) *Flow {
	return &Flow{
		rooms:    rooms,
		bookings: bookings,
		step:     StepEventEntry,
	}
}

// Step returns the current step.
func (f *Flow) Step() Step { return f.step }

// Form returns the current form data.
func (f *Flow) Form() models.EventFormData { return f.form }

// Results returns the matched rooms from the last submitted form.
func (f *Flow) Results() []match.Result { return f.results }

// Booking returns the confirmed booking, or nil before confirmation.
func (f *Flow) Booking() *models.Booking { return f.booking }

// ErrorMessage returns the pending user-facing error, if any.
func (f *Flow) ErrorMessage() string { return f.errMsg }

// SubmitForm validates the form and moves to room results. An empty
// match is a valid state, not an error; the caller renders it as
// "no rooms match".
func (f *Flow) SubmitForm(form models.EventFormData) error {
	if f.step != StepEventEntry {
		return &ErrWrongStep{Want: StepEventEntry, Got: f.step}
	}
	if err := form.Validate(); err != nil {
		return err
	}

	f.form = form
	f.results = match.Match(form, f.rooms)
	f.errMsg = ""
	f.step = StepRoomResults
	return nil
}

// SelectRoom attempts to confirm a booking for one of the matched
// rooms. On a double booking the flow stays at room results with a
// user-facing message set; any other failure is returned as-is.
func (f *Flow) SelectRoom(ctx context.Context, roomID string) (*models.Booking, error) {
	if f.step != StepRoomResults {
		return nil, &ErrWrongStep{Want: StepRoomResults, Got: f.step}
	}

	var room *models.Room
	for i := range f.results {
		if f.results[i].Room.ID == roomID {
			room = &f.results[i].Room
			break
		}
	}
	if room == nil {
		return nil, fmt.Errorf("room %s is not among the matched rooms", roomID)
	}

	conflicts, err := f.bookings.CheckConflict(ctx, schedule.Slot{
		RoomID:          room.ID,
		Date:            f.form.PreferredDate,
		TimeSlot:        f.form.TimeSlot,
		DurationMinutes: f.form.EffectiveDuration(),
	}, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		f.errMsg = service.ConflictMessage
		return nil, service.ErrBookingConflict
	}

	booking, err := f.bookings.AddBooking(ctx, f.form, *room)
	if err != nil {
		return nil, err
	}

	f.booking = booking
	f.errMsg = ""
	f.step = StepConfirmed
	return booking, nil
}

// DirectBook confirms a booking for a pre-selected room, skipping room
// results. Capacity is re-checked as a hard gate since the other
// matching filters are bypassed.
func (f *Flow) DirectBook(ctx context.Context, form models.EventFormData, room models.Room) (*models.Booking, error) {
	if f.step != StepEventEntry {
		return nil, &ErrWrongStep{Want: StepEventEntry, Got: f.step}
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if room.Capacity < form.GroupSize {
		return nil, fmt.Errorf("room %s holds %d, group size is %d", room.ID, room.Capacity, form.GroupSize)
	}

	conflicts, err := f.bookings.CheckConflict(ctx, schedule.Slot{
		RoomID:          room.ID,
		Date:            form.PreferredDate,
		TimeSlot:        form.TimeSlot,
		DurationMinutes: form.EffectiveDuration(),
	}, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		f.errMsg = service.ConflictMessage
		return nil, service.ErrBookingConflict
	}

	booking, err := f.bookings.AddBooking(ctx, form, room)
	if err != nil {
		return nil, err
	}

	f.form = form
	f.booking = booking
	f.errMsg = ""
	f.step = StepConfirmed
	return booking, nil
}

// Back returns from room results to event entry, clearing any pending
// error. The form is kept so the user can adjust it.
func (f *Flow) Back() {
	if f.step != StepRoomResults {
		return
	}
	f.errMsg = ""
	f.results = nil
	f.step = StepEventEntry
}

// BookAnother resets all transient state after a confirmation and
// returns to event entry. Persisted bookings are unaffected.
func (f *Flow) BookAnother() {
	if f.step != StepConfirmed {
		return
	}
	f.form = models.EventFormData{}
	f.results = nil
	f.booking = nil
	f.errMsg = ""
	f.step = StepEventEntry
}
