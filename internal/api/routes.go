package api

import (
	"net/http"

	"github.com/roomease/roomease/internal/catalog"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(cat *catalog.Catalog, svc BookingServicer, events *EventServer) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler)

	// Room catalog endpoints
	roomHandler := NewRoomHandler(cat)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Room matching endpoint
	mux.Handle("/api/match", NewMatchHandler(cat))

	// Booking endpoints
	bookingHandler := NewBookingHandler(svc, cat)
	mux.Handle("/api/bookings", bookingHandler)
	mux.Handle("/api/bookings/", bookingHandler)

	// Compare list endpoints
	mux.Handle("/api/compare", NewCompareHandler(svc))

	// Booking update stream
	if events != nil {
		mux.Handle("/events", events.Server())
	}

	return mux
}
