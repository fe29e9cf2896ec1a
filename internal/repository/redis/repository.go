// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/roomease/roomease/internal/config"
	"github.com/roomease/roomease/internal/models"
)

// Common errors
var (
	ErrNotFound = errors.New("booking not found")
)

// Repository implements the repository interface with Redis storage
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		// Use DB from config if not specified in the URI
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}

		// Use password from config if not in URI or if empty in URI
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		address := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

		client = redis.NewClient(&redis.Options{
			Addr:     address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.BookingTTL,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// bookingKey returns the Redis key for a booking
func (r *Repository) bookingKey(id string) string {
	return fmt.Sprintf("%sbookings:%s", r.keyPrefix, id)
}

// seqKey returns the Redis key for the confirmation sequence counter
func (r *Repository) seqKey() string {
	return r.keyPrefix + "confirmationSeq"
}

// compareKey returns the Redis key for the compare-list selection
func (r *Repository) compareKey() string {
	return r.keyPrefix + "compare"
}

// SaveBooking saves a booking to the repository
func (r *Repository) SaveBooking(ctx context.Context, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	key := r.bookingKey(booking.ID)
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

// GetBooking retrieves a booking by ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	data, err := r.client.Get(ctx, r.bookingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	var booking models.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return &booking, nil
}

// ListBookings returns all bookings, most recent first
func (r *Repository) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	pattern := r.bookingKey("*")
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if len(keys) == 0 {
		return []*models.Booking{}, nil
	}

	// Use MGET to retrieve all booking data in a single roundtrip
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking data: %w", err)
	}

	bookings := make([]*models.Booking, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var booking models.Booking
		if err := json.Unmarshal([]byte(raw), &booking); err != nil {
			// A corrupt entry should not take the whole listing down
			log.Printf("Skipping corrupt booking at %s: %v", keys[i], err)
			continue
		}
		bookings = append(bookings, &booking)
	}

	// Redis key order is arbitrary; restore most-recent-first
	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		}
		return bookings[i].ConfirmationNumber > bookings[j].ConfirmationNumber
	})

	return bookings, nil
}

// DeleteBooking removes a booking by ID
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	deleted, err := r.client.Del(ctx, r.bookingKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// NextConfirmationSeq allocates the next confirmation sequence number
func (r *Repository) NextConfirmationSeq(ctx context.Context) (int, error) {
	n, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment confirmation sequence: %w", err)
	}
	return int(n), nil
}

// SaveCompareList stores the compare-list room id selection
func (r *Repository) SaveCompareList(ctx context.Context, roomIDs []string) error {
	data, err := json.Marshal(roomIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal compare list: %w", err)
	}
	if err := r.client.Set(ctx, r.compareKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save compare list: %w", err)
	}
	return nil
}

// GetCompareList returns the compare-list room id selection
func (r *Repository) GetCompareList(ctx context.Context) ([]string, error) {
	data, err := r.client.Get(ctx, r.compareKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get compare list: %w", err)
	}

	var roomIDs []string
	if err := json.Unmarshal(data, &roomIDs); err != nil {
		// Corrupt stored data falls back to an empty selection
		return []string{}, nil
	}
	return roomIDs, nil
}
