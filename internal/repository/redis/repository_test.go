// Package redis_test provides tests for the Redis repository
package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/roomease/roomease/internal/config"
	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Repository, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	cfg := config.RedisConfig{
		Host:      mr.Host(),
		Port:      mr.Port(),
		DB:        0,
		KeyPrefix: "test:",
	}

	repo, err := redis.NewRepository(cfg)
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
		mr.Close()
	}

	return repo, mr, cleanup
}

// TestRedisWithURI tests connection with URI format
func TestRedisWithURI(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	uri := fmt.Sprintf("redis://%s:%s", mr.Host(), mr.Port())
	cfg := config.RedisConfig{
		URI:       uri,
		KeyPrefix: "test:",
	}

	repo, err := redis.NewRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	_, err = repo.NextConfirmationSeq(ctx)
	assert.NoError(t, err)
}

func TestBookingLifecycle(t *testing.T) {
	repo, _, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	booking := &models.Booking{
		ID:                 "b1",
		Status:             models.BookingStatusConfirmed,
		ConfirmationNumber: "CONF-2026-001",
		CreatedAt:          time.Now().UTC(),
		EventName:          "Workshop",
		RoomID:             "RCH-305",
		PreferredDate:      "2026-03-01",
		TimeSlot:           "09:00",
		DurationMinutes:    60,
	}

	t.Run("SaveAndGet", func(t *testing.T) {
		require.NoError(t, repo.SaveBooking(ctx, booking))

		saved, err := repo.GetBooking(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, "Workshop", saved.EventName)
		assert.Equal(t, "CONF-2026-001", saved.ConfirmationNumber)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.GetBooking(ctx, "nope")
		assert.ErrorIs(t, err, redis.ErrNotFound)
	})

	t.Run("ListMostRecentFirst", func(t *testing.T) {
		later := &models.Booking{
			ID:                 "b2",
			ConfirmationNumber: "CONF-2026-002",
			CreatedAt:          booking.CreatedAt.Add(time.Minute),
		}
		require.NoError(t, repo.SaveBooking(ctx, later))

		bookings, err := repo.ListBookings(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, "b2", bookings[0].ID)
		assert.Equal(t, "b1", bookings[1].ID)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteBooking(ctx, "b1"))
		assert.ErrorIs(t, repo.DeleteBooking(ctx, "b1"), redis.ErrNotFound)
	})
}

func TestConfirmationSequence(t *testing.T) {
	repo, _, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		n, err := repo.NextConfirmationSeq(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestCompareList(t *testing.T) {
	repo, _, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	ids, err := repo.GetCompareList(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.SaveCompareList(ctx, []string{"RCH-305", "AL-009"}))
	ids, err = repo.GetCompareList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"RCH-305", "AL-009"}, ids)
}

func TestCorruptBookingIsSkippedInList(t *testing.T) {
	repo, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repo.SaveBooking(ctx, &models.Booking{ID: "good", CreatedAt: time.Now()}))
	require.NoError(t, mr.Set("test:bookings:bad", "{corrupt"))

	bookings, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "good", bookings[0].ID)
}

func TestCorruptCompareListFallsBack(t *testing.T) {
	repo, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, mr.Set("test:compare", "{corrupt"))

	ids, err := repo.GetCompareList(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
