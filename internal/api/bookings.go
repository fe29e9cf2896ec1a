package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/roomease/roomease/internal/catalog"
	"github.com/roomease/roomease/internal/models"
	"github.com/roomease/roomease/internal/schedule"
	"github.com/roomease/roomease/internal/service"
	"github.com/roomease/roomease/internal/utils"
)

// BookingHandler handles HTTP requests for booking management
type BookingHandler struct {
	service BookingServicer
	catalog *catalog.Catalog
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(svc BookingServicer, cat *catalog.Catalog) *BookingHandler {
	return &BookingHandler{service: svc, catalog: cat}
}

// createBookingRequest is the payload for POST /api/bookings
type createBookingRequest struct {
	Form   models.EventFormData `json:"form"`
	RoomID string               `json:"roomId"`
}

// conflictResponse is returned with status 409 on a double booking
type conflictResponse struct {
	Error     string            `json:"error"`
	Conflicts []*models.Booking `json:"conflicts,omitempty"`
}

// ServeHTTP handles HTTP requests for booking management
func (h *BookingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Path format: /api/bookings/{bookingID}
	pathParts := strings.Split(r.URL.Path, "/")
	var bookingID string
	if len(pathParts) >= 4 && pathParts[3] != "" {
		bookingID = pathParts[3]
	}

	switch {
	case r.Method == http.MethodGet && bookingID == "":
		h.listBookings(w, r)
	case r.Method == http.MethodGet:
		h.getBooking(w, r, bookingID)
	case r.Method == http.MethodPost && bookingID == "":
		h.createBooking(w, r)
	case r.Method == http.MethodPatch && bookingID != "":
		h.updateBooking(w, r, bookingID)
	case r.Method == http.MethodDelete && bookingID != "":
		h.cancelBooking(w, r, bookingID)
	default:
		http.NotFound(w, r)
	}
}

// listBookings handles GET /api/bookings, most recent first
func (h *BookingHandler) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		http.Error(w, "Error retrieving bookings", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(bookings)
}

// getBooking handles GET /api/bookings/{bookingID}
func (h *BookingHandler) getBooking(w http.ResponseWriter, r *http.Request, bookingID string) {
	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(booking)
}

// createBooking handles POST /api/bookings. The proposed slot is
// conflict-checked before the booking is created.
func (h *BookingHandler) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding booking request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := req.Form.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	room, ok := h.catalog.Get(req.RoomID)
	if !ok {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}
	if room.Capacity < req.Form.GroupSize {
		http.Error(w, "Room capacity is below the group size", http.StatusBadRequest)
		return
	}

	conflicts, err := h.service.CheckConflict(r.Context(), schedule.Slot{
		RoomID:          room.ID,
		Date:            req.Form.PreferredDate,
		TimeSlot:        req.Form.TimeSlot,
		DurationMinutes: req.Form.EffectiveDuration(),
	}, "")
	if err != nil {
		log.Printf("Error checking conflicts: %v", err)
		http.Error(w, "Error checking conflicts", http.StatusInternalServerError)
		return
	}
	if len(conflicts) > 0 {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(conflictResponse{
			Error:     service.ConflictMessage,
			Conflicts: conflicts,
		})
		return
	}

	booking, err := h.service.AddBooking(r.Context(), req.Form, room)
	if err != nil {
		log.Printf("Error saving booking: %v", err)
		http.Error(w, "Error saving booking", http.StatusInternalServerError)
		return
	}

	log.Printf("Confirmed booking %s for %s", booking.ConfirmationNumber, utils.SanitizeLogString(booking.EventName))
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

// updateBooking handles PATCH /api/bookings/{bookingID}. Only schedule
// fields can change; the service re-validates conflicts excluding the
// booking itself.
func (h *BookingHandler) updateBooking(w http.ResponseWriter, r *http.Request, bookingID string) {
	var update models.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("Error decoding booking update: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Surface a 404 rather than silently no-opping over HTTP
	if _, err := h.service.GetBooking(r.Context(), bookingID); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	if err := h.service.UpdateBooking(r.Context(), bookingID, update); err != nil {
		if errors.Is(err, service.ErrBookingConflict) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(conflictResponse{Error: service.ConflictMessage})
			return
		}
		log.Printf("Error updating booking %s: %v", bookingID, err)
		http.Error(w, "Error updating booking", http.StatusInternalServerError)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		http.Error(w, "Error retrieving booking", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(booking)
}

// cancelBooking handles DELETE /api/bookings/{bookingID}
func (h *BookingHandler) cancelBooking(w http.ResponseWriter, r *http.Request, bookingID string) {
	if _, err := h.service.GetBooking(r.Context(), bookingID); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		log.Printf("Error cancelling booking %s: %v", bookingID, err)
		http.Error(w, "Error cancelling booking", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Booking cancelled successfully",
	})
}
