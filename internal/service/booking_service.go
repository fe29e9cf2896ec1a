package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/repository"
	"github.com/roomease/roomease/internal/schedule"
)

// ErrBookingConflict is returned when a proposed slot overlaps an
// existing booking for the same room and date.
var ErrBookingConflict = errors.New("room is already booked for that time")

// ConflictMessage is the user-facing text surfaced on a double booking.
const ConflictMessage = "This room is already booked for that time."

// confirmationPrefix anchors confirmation numbers to the booking year.
const confirmationPrefix = "CONF-2026"

// BookingUpdateCallback is a function type for booking update callbacks
type BookingUpdateCallback func(*models.Booking)

// BookingService provides business logic for creating and maintaining
// bookings on top of the repository port.
type BookingService struct {
	repo            repository.Repository
	updateCallbacks []BookingUpdateCallback
}

// NewBookingService creates a new BookingService with the given repository
func NewBookingService(repo repository.Repository) *BookingService {
	return &BookingService{
		repo:            repo,
		updateCallbacks: make([]BookingUpdateCallback, 0),
	}
}

// RegisterUpdateCallback registers a callback function to be called when booking data changes
func (s *BookingService) RegisterUpdateCallback(callback BookingUpdateCallback) {
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// notifyUpdate calls all registered callbacks with the changed booking
func (s *BookingService) notifyUpdate(booking *models.Booking) {
	for _, callback := range s.updateCallbacks {
		callback(booking)
	}
}

// FormatConfirmationNumber renders a sequence number in its display
// form, zero-padded to at least three digits.
func FormatConfirmationNumber(seq int) string {
	return fmt.Sprintf("%s-%03d", confirmationPrefix, seq)
}

// AddBooking allocates the next confirmation number, snapshots the
// event and room into a new booking, and persists it. Conflict checking
// is the caller's responsibility; use CheckConflict first.
func (s *BookingService) AddBooking(ctx context.Context, form models.EventFormData, room models.Room) (*models.Booking, error) {
	seq, err := s.repo.NextConfirmationSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate confirmation number: %w", err)
	}

	booking := &models.Booking{
		ID:                 uuid.NewString(),
		Status:             models.BookingStatusConfirmed,
		ConfirmationNumber: FormatConfirmationNumber(seq),
		CreatedAt:          time.Now().UTC(),

		EventName:       form.EventName,
		OrganizerName:   form.OrganizerName,
		EventType:       form.EventType,
		PreferredDate:   form.PreferredDate,
		TimeSlot:        form.TimeSlot,
		DurationMinutes: form.EffectiveDuration(),
		GroupSize:       form.GroupSize,

		RoomID:          room.ID,
		RoomName:        room.Name,
		Building:        room.Building,
		Capacity:        room.Capacity,
		FurnitureLabels: models.FurnitureLineForRoom(room),
		AVBadges:        models.AVBadgesForRoom(room),
	}

	if err := s.repo.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.notifyUpdate(booking)
	return booking, nil
}

// GetBooking returns one booking by id.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

// ListBookings returns all bookings, most recent first.
func (s *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.repo.ListBookings(ctx)
}

// CheckConflict returns the existing bookings overlapping the proposed
// slot. excludeID skips the booking being edited.
func (s *BookingService) CheckConflict(ctx context.Context, slot schedule.Slot, excludeID string) ([]*models.Booking, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return schedule.FindConflicts(bookings, slot, excludeID), nil
}

// UpdateBooking merges schedule fields into the booking with the given
// id, re-validating conflicts (excluding the booking itself) before
// applying. Identity and room fields are preserved regardless of the
// payload. Updating an unknown id is a no-op.
func (s *BookingService) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) error {
	booking, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		// No-op if the booking does not exist
		return nil
	}

	merged := *booking
	merged.Apply(update)

	conflicts, err := s.CheckConflict(ctx, schedule.Slot{
		RoomID:          merged.RoomID,
		Date:            merged.PreferredDate,
		TimeSlot:        merged.TimeSlot,
		DurationMinutes: merged.DurationMinutes,
	}, id)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return ErrBookingConflict
	}

	if err := s.repo.SaveBooking(ctx, &merged); err != nil {
		return fmt.Errorf("save booking: %w", err)
	}

	s.notifyUpdate(&merged)
	return nil
}

// CancelBooking removes the booking with the given id. Cancelling an
// unknown id is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	booking, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return nil
	}

	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.notifyUpdate(booking)
	return nil
}

// SaveCompareList persists the compare-list room selection.
func (s *BookingService) SaveCompareList(ctx context.Context, roomIDs []string) error {
	return s.repo.SaveCompareList(ctx, roomIDs)
}

// GetCompareList returns the persisted compare-list room selection.
func (s *BookingService) GetCompareList(ctx context.Context) ([]string, error) {
	return s.repo.GetCompareList(ctx)
}
