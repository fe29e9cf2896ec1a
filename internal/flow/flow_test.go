package flow_test

import (
	"context"
	"testing"

	"github.com/roomease/roomease/internal/flow"
	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/repository/memory"
	"github.com/roomease/roomease/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rooms = []models.Room{
	{ID: "RCH-305", Name: "RCH 305", Building: "RCH", RoomNumber: "305", Capacity: 150, AVCapable: true},
	{ID: "AL-009", Name: "AL 009", Building: "AL", RoomNumber: "009", Capacity: 40},
}

func validForm() models.EventFormData {
	return models.EventFormData{
		EventName:       "Study Group",
		OrganizerName:   "Sam",
		EventType:       "Study Session",
		PreferredDate:   "2026-03-01",
		TimeSlot:        "09:00",
		DurationMinutes: 60,
		GroupSize:       20,
	}
}

func newFlow(t *testing.T) (*flow.Flow, *service.BookingService) {
	t.Helper()
	svc := service.NewBookingService(memory.NewRepository())
	return flow.New(rooms, svc), svc
}

func TestHappyPath(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	assert.Equal(t, flow.StepEventEntry, f.Step())

	require.NoError(t, f.SubmitForm(validForm()))
	assert.Equal(t, flow.StepRoomResults, f.Step())
	require.Len(t, f.Results(), 2)

	booking, err := f.SelectRoom(ctx, "AL-009")
	require.NoError(t, err)
	assert.Equal(t, flow.StepConfirmed, f.Step())
	assert.Equal(t, "CONF-2026-001", booking.ConfirmationNumber)
	assert.Equal(t, booking, f.Booking())
}

func TestInvalidFormStaysAtEventEntry(t *testing.T) {
	f, _ := newFlow(t)

	form := validForm()
	form.EventName = ""
	assert.Error(t, f.SubmitForm(form))
	assert.Equal(t, flow.StepEventEntry, f.Step())
}

func TestEmptyMatchIsAValidState(t *testing.T) {
	f, _ := newFlow(t)

	form := validForm()
	form.GroupSize = 500
	require.NoError(t, f.SubmitForm(form))
	assert.Equal(t, flow.StepRoomResults, f.Step())
	assert.Empty(t, f.Results())
}

func TestConflictStaysAtRoomResults(t *testing.T) {
	f, svc := newFlow(t)
	ctx := context.Background()

	// Occupy the slot through a separate booking.
	_, err := svc.AddBooking(ctx, validForm(), rooms[0])
	require.NoError(t, err)

	require.NoError(t, f.SubmitForm(validForm()))
	_, err = f.SelectRoom(ctx, "RCH-305")
	assert.ErrorIs(t, err, service.ErrBookingConflict)
	assert.Equal(t, flow.StepRoomResults, f.Step(), "conflict keeps the flow at room results")
	assert.Equal(t, service.ConflictMessage, f.ErrorMessage())

	// The other room is still bookable.
	booking, err := f.SelectRoom(ctx, "AL-009")
	require.NoError(t, err)
	assert.Equal(t, flow.StepConfirmed, f.Step())
	assert.Empty(t, f.ErrorMessage())
	assert.NotNil(t, booking)
}

func TestBackClearsError(t *testing.T) {
	f, svc := newFlow(t)
	ctx := context.Background()

	_, err := svc.AddBooking(ctx, validForm(), rooms[0])
	require.NoError(t, err)

	require.NoError(t, f.SubmitForm(validForm()))
	_, err = f.SelectRoom(ctx, "RCH-305")
	require.Error(t, err)
	require.NotEmpty(t, f.ErrorMessage())

	f.Back()
	assert.Equal(t, flow.StepEventEntry, f.Step())
	assert.Empty(t, f.ErrorMessage())
	assert.Equal(t, validForm(), f.Form(), "back keeps the form for adjustment")
}

func TestBookAnotherResetsTransientState(t *testing.T) {
	f, svc := newFlow(t)
	ctx := context.Background()

	require.NoError(t, f.SubmitForm(validForm()))
	_, err := f.SelectRoom(ctx, "AL-009")
	require.NoError(t, err)

	f.BookAnother()
	assert.Equal(t, flow.StepEventEntry, f.Step())
	assert.Equal(t, models.EventFormData{}, f.Form())
	assert.Nil(t, f.Booking())
	assert.Empty(t, f.Results())

	// The persisted collection is untouched.
	bookings, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestSelectRoomOutsideResults(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	form := validForm()
	form.GroupSize = 100 // AL-009 no longer matches
	require.NoError(t, f.SubmitForm(form))

	_, err := f.SelectRoom(ctx, "AL-009")
	assert.Error(t, err)
	assert.Equal(t, flow.StepRoomResults, f.Step())
}

func TestWrongStepTransitions(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	_, err := f.SelectRoom(ctx, "AL-009")
	assert.Error(t, err)

	require.NoError(t, f.SubmitForm(validForm()))
	assert.Error(t, f.SubmitForm(validForm()), "cannot resubmit from room results")
}

func TestDirectBook(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	booking, err := f.DirectBook(ctx, validForm(), rooms[0])
	require.NoError(t, err)
	assert.Equal(t, flow.StepConfirmed, f.Step())
	assert.Equal(t, "RCH-305", booking.RoomID)
}

func TestDirectBookCapacityGate(t *testing.T) {
	f, _ := newFlow(t)
	ctx := context.Background()

	form := validForm()
	form.GroupSize = 100
	_, err := f.DirectBook(ctx, form, rooms[1]) // AL-009 holds 40
	assert.Error(t, err)
	assert.Equal(t, flow.StepEventEntry, f.Step())
}

func TestDirectBookConflict(t *testing.T) {
	f, svc := newFlow(t)
	ctx := context.Background()

	_, err := svc.AddBooking(ctx, validForm(), rooms[0])
	require.NoError(t, err)

	_, err = f.DirectBook(ctx, validForm(), rooms[0])
	assert.ErrorIs(t, err, service.ErrBookingConflict)
	assert.Equal(t, flow.StepEventEntry, f.Step())
}
