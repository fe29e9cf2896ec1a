package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/roomease/roomease/internal/catalog"
	"github.com/roomease/roomease/internal/match"
	"github.com/roomease/roomease/internal/models"
)

// MatchHandler handles HTTP requests for room matching
type MatchHandler struct {
	catalog *catalog.Catalog
}

// NewMatchHandler creates a new match handler over the given catalog
func NewMatchHandler(cat *catalog.Catalog) *MatchHandler {
	return &MatchHandler{catalog: cat}
}

// ServeHTTP handles POST /api/match: the event form goes in, the
// ranked candidate rooms come out. An empty result list is a valid
// response, not an error.
func (h *MatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var form models.EventFormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("Error decoding match request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if form.GroupSize < 0 {
		http.Error(w, "Group size must not be negative", http.StatusBadRequest)
		return
	}

	results := match.Match(form, h.catalog.Rooms())
	json.NewEncoder(w).Encode(results)
}
