// Package repository defines the persistence port for booking state
package repository

import (
	"context"

	"github.com/roomease/roomease/internal/models"
)

// Repository is the durable store behind the booking service. Every
// mutation persists synchronously; implementations decide how.
type Repository interface {
	// Booking operations
	SaveBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	// NextConfirmationSeq allocates the next confirmation sequence
	// number, starting at 1 and strictly increasing per store.
	NextConfirmationSeq(ctx context.Context) (int, error)

	// Compare-list selection, a persisted set of room ids
	SaveCompareList(ctx context.Context, roomIDs []string) error
	GetCompareList(ctx context.Context) ([]string, error)
}
