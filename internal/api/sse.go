package api

import (
	"encoding/json"
	"log"

	"github.com/r3labs/sse/v2"
	"github.com/roomease/roomease/internal/models"
)

// BookingStream is the SSE stream name clients subscribe to with
// /events?stream=bookings.
const BookingStream = "bookings"

// EventServer pushes booking changes to connected clients over
// server-sent events.
type EventServer struct {
	server *sse.Server
}

// NewEventServer creates the SSE server with the booking stream
// registered.
func NewEventServer() *EventServer {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(BookingStream)
	return &EventServer{server: server}
}

// Server exposes the underlying SSE handler for route registration.
func (e *EventServer) Server() *sse.Server {
	return e.server
}

// NotifyBookingUpdate publishes a booking change to all subscribers.
// It matches the service's update-callback signature.
func (e *EventServer) NotifyBookingUpdate(booking *models.Booking) {
	data, err := json.Marshal(booking)
	if err != nil {
		log.Printf("Error marshaling booking event: %v", err)
		return
	}

	e.server.Publish(BookingStream, &sse.Event{Data: data})
}

// Shutdown closes all client connections.
func (e *EventServer) Shutdown() {
	e.server.Close()
}
