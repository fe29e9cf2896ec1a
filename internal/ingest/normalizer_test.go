package ingest_test

import (
	"testing"

	"github.com/roomease/roomease/internal/ingest"
	"github.com/roomease/roomease/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"STC", "Bldg/Room", "Regular Capacity", "Furniture", "", "Bldg/Room", "Regular Capacity", "Furniture"}

func TestNormalizeBasicRow(t *testing.T) {
	rows := [][]string{
		header,
		{"SR", "RCH 305", "150", "STC", "D", "AL - 009", "40", "FTLC/SEM"},
	}

	res := ingest.Normalize(rows)
	require.Len(t, res.Rooms, 2)

	left := res.Rooms[0]
	assert.Equal(t, models.Room{
		ID:             "RCH-305",
		Name:           "RCH 305",
		Building:       "RCH",
		RoomNumber:     "305",
		Capacity:       150,
		Furniture:      "STC",
		AVCapable:      true,
		DocCamera:      false,
		RawFeatureCode: "SR",
	}, left)

	right := res.Rooms[1]
	assert.Equal(t, "AL-009", right.ID)
	assert.Equal(t, "AL 009", right.Name)
	assert.Equal(t, "009", right.RoomNumber, "alphanumeric suffixes and leading zeros survive")
	assert.False(t, right.AVCapable)
	assert.True(t, right.DocCamera)
	assert.Equal(t, "FTLC/SEM", right.Furniture)
}

func TestNormalizeRejectsRows(t *testing.T) {
	rows := [][]string{
		header,
		{"", "AHS - 032A", "0", "", "", "", "", ""},
		{"", "RCH 101", "lots", "", "", "305", "25", ""},
	}

	res := ingest.Normalize(rows)
	assert.Empty(t, res.Rooms)

	reasons := make(map[string]string)
	for _, rej := range res.Rejected {
		if rej.RawRoom != "" {
			reasons[rej.RawRoom] = rej.Reason
		}
	}
	assert.Equal(t, ingest.ReasonMissingCapacity, reasons["AHS - 032A"], "zero capacity")
	assert.Equal(t, ingest.ReasonCapacityNotNumber, reasons["RCH 101"], "no digits at all")
	assert.Equal(t, ingest.ReasonUnparsedBuilding, reasons["305"], "no building code")
}

func TestNormalizeRejectsMissingRoom(t *testing.T) {
	rows := [][]string{
		header,
		{"SR", "", "150", "STC", "", "", "", ""},
	}

	res := ingest.Normalize(rows)
	require.Len(t, res.Rejected, 2)
	assert.Equal(t, ingest.ReasonMissingRoom, res.Rejected[0].Reason)
	assert.Equal(t, "left", res.Rejected[0].Side)
	assert.Equal(t, "right", res.Rejected[1].Side)
}

func TestNormalizeSkipsLegendRows(t *testing.T) {
	rows := [][]string{
		header,
		{"Furniture Legend", "", "", "", "", "", "", ""},
		{"", "STC = Standard tables and chairs"},
		{"SR", "RCH 305", "150", "STC", "", "", "", ""},
	}

	res := ingest.Normalize(rows)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "RCH-305", res.Rooms[0].ID)
}

func TestNormalizeDedupIdempotence(t *testing.T) {
	row := []string{"SR", "RCH 305", "150", "STC", "", "", "", ""}
	altered := []string{"", "rch - 305", "99", "SEM", "", "", "", ""}
	rows := [][]string{header, row, altered}

	res := ingest.Normalize(rows)
	require.Len(t, res.Rooms, 1, "first occurrence wins")
	assert.Equal(t, 150, res.Rooms[0].Capacity)
	assert.Equal(t, "STC", res.Rooms[0].Furniture)

	// Re-ingesting the same sheet yields the same single room.
	again := ingest.Normalize(rows)
	assert.Equal(t, res.Rooms, again.Rooms)
}

func TestNormalizeEmptySheet(t *testing.T) {
	res := ingest.Normalize(nil)
	assert.Empty(t, res.Rooms)
	assert.Empty(t, res.Rejected)

	res = ingest.Normalize([][]string{header})
	assert.Empty(t, res.Rooms)
	assert.Empty(t, res.Rejected)
}

func TestNormalizeCounters(t *testing.T) {
	rows := [][]string{
		header,
		{"SR", "RCH 305", "150", "STC", "", "AL 009", "40", ""},
		{"", "AHS 032A", "0", "", "", "", "", ""},
	}

	res := ingest.Normalize(rows)
	assert.Equal(t, 3, res.RawSeen, "every non-empty room string counts")
	assert.Equal(t, 2, res.BuildingGuesses, "RCH and AL parsed; AHS never reached the parser")
	assert.Len(t, res.Rooms, 2)
}

func TestNormalizeBuildingNormalization(t *testing.T) {
	rows := [][]string{
		header,
		{"", "ahs   -   032a", "25", "", "", "", "", ""},
	}

	res := ingest.Normalize(rows)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "AHS-032A", res.Rooms[0].ID)
	assert.Equal(t, "AHS", res.Rooms[0].Building)
	assert.Equal(t, "032A", res.Rooms[0].RoomNumber)
}
