package api_test

import (
	"github.com/roomease/roomease/internal/catalog"
	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/repository/memory"
	"github.com/roomease/roomease/internal/service"
)

// testCatalog returns a small fixed catalog used across the handler tests.
func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Room{
		{
			ID:             "rch-305",
			Name:           "RCH 305",
			Building:       "RCH",
			RoomNumber:     "305",
			Capacity:       150,
			Furniture:      "STC",
			AVCapable:      true,
			DocCamera:      true,
			RawFeatureCode: "SR/D",
		},
		{
			ID:         "ahs-1003",
			Name:       "AHS 1003",
			Building:   "AHS",
			RoomNumber: "1003",
			Capacity:   40,
			Furniture:  "FTLC",
		},
		{
			ID:             "mc-2066",
			Name:           "MC 2066",
			Building:       "MC",
			RoomNumber:     "2066",
			Capacity:       80,
			Furniture:      "FTLC/SEM",
			RawFeatureCode: "E",
		},
	})
}

// testService returns a booking service backed by a fresh in-memory repository.
func testService() *service.BookingService {
	return service.NewBookingService(memory.NewRepository())
}

// validForm returns a complete event form that books out of the test catalog.
func validForm() models.EventFormData {
	return models.EventFormData{
		EventName:     "Study Jam",
		OrganizerName: "Sam Okafor",
		PreferredDate: "2026-09-14",
		TimeSlot:      "14:00",
		GroupSize:     20,
		EventType:     "Study Session",
	}
}
