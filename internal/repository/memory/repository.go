// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/roomease/roomease/internal/models"
)

// ErrNotFound is returned when a requested booking is not found
var ErrNotFound = errors.New("booking not found")

// Repository implements the repository interface with in-memory storage
type Repository struct {
	bookings []*models.Booking // most recent first
	seq      int
	compare  []string
	mu       sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{seq: 1}
}

// SaveBooking stores a booking. New bookings are prepended so the list
// stays most-recent-first; an existing id is updated in place.
func (r *Repository) SaveBooking(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *booking
	for i, b := range r.bookings {
		if b.ID == booking.ID {
			r.bookings[i] = &copied
			return nil
		}
	}

	r.bookings = append([]*models.Booking{&copied}, r.bookings...)
	return nil
}

// GetBooking retrieves a booking by ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// ListBookings returns all bookings, most recent first.
func (r *Repository) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

// DeleteBooking removes a booking by ID
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// NextConfirmationSeq allocates the next confirmation sequence number.
func (r *Repository) NextConfirmationSeq(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.seq
	r.seq++
	return n, nil
}

// SaveCompareList stores the compare-list room id selection.
func (r *Repository) SaveCompareList(ctx context.Context, roomIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.compare = append([]string(nil), roomIDs...)
	return nil
}

// GetCompareList returns the compare-list room id selection.
func (r *Repository) GetCompareList(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.compare...), nil
}
