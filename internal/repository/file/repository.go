// Package file provides a JSON-file-backed implementation of the
// repository interface. Each storage key maps to one file in a state
// directory; every mutation rewrites the affected file synchronously.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/roomease/roomease/internal/models"
)

// ErrNotFound is returned when a requested booking is not found
var ErrNotFound = errors.New("booking not found")

// Storage key file names, one per persisted value.
const (
	bookingsFile = "roomease.bookings.v1.json"
	seqFile      = "roomease.confirmationSeq.v1.json"
	compareFile  = "roomease.compare.v1.json"
)

// Repository implements the repository interface with JSON state files
type Repository struct {
	dir      string
	bookings []*models.Booking // most recent first
	seq      int
	compare  []string
	mu       sync.Mutex
}

// NewRepository creates a file repository rooted at dir, hydrating any
// existing state. Corrupt or missing state files fall back to empty
// defaults rather than failing.
func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	r := &Repository{dir: dir, seq: 1}
	r.hydrate()
	return r, nil
}

func (r *Repository) hydrate() {
	var bookings []*models.Booking
	if readJSON(filepath.Join(r.dir, bookingsFile), &bookings) && bookings != nil {
		r.bookings = bookings
	}

	var seq int
	if readJSON(filepath.Join(r.dir, seqFile), &seq) && seq > 0 {
		r.seq = seq
	}

	var compare []string
	if readJSON(filepath.Join(r.dir, compareFile), &compare) {
		r.compare = compare
	}
}

// readJSON reports whether the file existed and parsed cleanly.
func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (r *Repository) persistBookings() error {
	return writeJSON(filepath.Join(r.dir, bookingsFile), r.bookings)
}

// SaveBooking stores a booking and persists the collection. New
// bookings are prepended so the list stays most-recent-first.
func (r *Repository) SaveBooking(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *booking
	replaced := false
	for i, b := range r.bookings {
		if b.ID == booking.ID {
			r.bookings[i] = &copied
			replaced = true
			break
		}
	}
	if !replaced {
		r.bookings = append([]*models.Booking{&copied}, r.bookings...)
	}
	return r.persistBookings()
}

// GetBooking retrieves a booking by ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

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
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

// DeleteBooking removes a booking by ID and persists the collection.
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return r.persistBookings()
		}
	}
	return ErrNotFound
}

// NextConfirmationSeq allocates and persists the next confirmation
// sequence number.
func (r *Repository) NextConfirmationSeq(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.seq
	r.seq++
	if err := writeJSON(filepath.Join(r.dir, seqFile), r.seq); err != nil {
		return 0, err
	}
	return n, nil
}

// SaveCompareList stores and persists the compare-list selection.
func (r *Repository) SaveCompareList(ctx context.Context, roomIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.compare = append([]string(nil), roomIDs...)
	return writeJSON(filepath.Join(r.dir, compareFile), r.compare)
}

// GetCompareList returns the compare-list selection.
func (r *Repository) GetCompareList(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.compare...), nil
}
