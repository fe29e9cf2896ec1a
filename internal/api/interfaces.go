package api

import (
	"context"

	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/schedule"
)

// BookingServicer defines the interface for booking service operations needed by API handlers
type BookingServicer interface {
	AddBooking(ctx context.Context, form models.EventFormData, room models.Room) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) error
	CancelBooking(ctx context.Context, id string) error
	CheckConflict(ctx context.Context, slot schedule.Slot, excludeID string) ([]*models.Booking, error)

	SaveCompareList(ctx context.Context, roomIDs []string) error
	GetCompareList(ctx context.Context) ([]string, error)
}
