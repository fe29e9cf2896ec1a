package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/repository/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := file.NewRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.SaveBooking(ctx, &models.Booking{
		ID:                 "b1",
		ConfirmationNumber: "CONF-2026-001",
		EventName:          "Workshop",
	}))

	n, err := repo.NextConfirmationSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.SaveCompareList(ctx, []string{"RCH-305"}))

	// A fresh repository over the same directory sees the same state.
	reopened, err := file.NewRepository(dir)
	require.NoError(t, err)

	booking, err := reopened.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Workshop", booking.EventName)

	n, err = reopened.NextConfirmationSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "sequence continues after reopen")

	ids, err := reopened.GetCompareList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"RCH-305"}, ids)
}

func TestCorruptStateFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "roomease.bookings.v1.json"), []byte("{corrupt"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roomease.confirmationSeq.v1.json"), []byte("nope"), 0o644))

	repo, err := file.NewRepository(dir)
	require.NoError(t, err, "corrupt state must not fail initialization")

	bookings, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	n, err := repo.NextConfirmationSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "sequence restarts at 1 on corrupt state")
}

func TestDeleteBooking(t *testing.T) {
	repo, err := file.NewRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.SaveBooking(ctx, &models.Booking{ID: "b1"}))
	require.NoError(t, repo.DeleteBooking(ctx, "b1"))
	assert.ErrorIs(t, repo.DeleteBooking(ctx, "b1"), file.ErrNotFound)
}

func TestListMostRecentFirst(t *testing.T) {
	repo, err := file.NewRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.SaveBooking(ctx, &models.Booking{ID: "b1"}))
	require.NoError(t, repo.SaveBooking(ctx, &models.Booking{ID: "b2"}))

	bookings, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b2", bookings[0].ID)
}
