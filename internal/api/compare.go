package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// CompareHandler handles HTTP requests for the compare-list selection
type CompareHandler struct {
	service BookingServicer
}

// NewCompareHandler creates a new compare-list handler
func NewCompareHandler(svc BookingServicer) *CompareHandler {
	return &CompareHandler{service: svc}
}

// ServeHTTP handles GET and PUT on /api/compare
func (h *CompareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		ids, err := h.service.GetCompareList(r.Context())
		if err != nil {
			log.Printf("Error getting compare list: %v", err)
			http.Error(w, "Error retrieving compare list", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(ids)

	case http.MethodPut:
		var ids []string
		if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := h.service.SaveCompareList(r.Context(), ids); err != nil {
			log.Printf("Error saving compare list: %v", err)
			http.Error(w, "Error saving compare list", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(ids)

	default:
		http.NotFound(w, r)
	}
}
