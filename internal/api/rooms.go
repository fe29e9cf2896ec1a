package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/roomease/roomease/internal/catalog"
)

// RoomHandler handles HTTP requests for the room catalog
type RoomHandler struct {
	catalog *catalog.Catalog
}

// NewRoomHandler creates a new room handler over the given catalog
func NewRoomHandler(cat *catalog.Catalog) *RoomHandler {
	return &RoomHandler{catalog: cat}
}

// ServeHTTP handles HTTP requests for the room catalog
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Path format: /api/rooms or /api/rooms/{roomID}
	pathParts := strings.Split(r.URL.Path, "/")
	var roomID string
	if len(pathParts) >= 4 && pathParts[3] != "" {
		roomID = pathParts[3]
	}

	switch {
	case r.Method == http.MethodGet && roomID == "buildings":
		h.listBuildings(w, r)
	case r.Method == http.MethodGet && roomID == "":
		h.listRooms(w, r)
	case r.Method == http.MethodGet:
		h.getRoom(w, r, roomID)
	default:
		http.NotFound(w, r)
	}
}

// listRooms handles GET /api/rooms with optional filter query parameters
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minCapacity, _ := strconv.Atoi(q.Get("minCapacity"))
	filter := catalog.Filter{
		Search:      q.Get("search"),
		Building:    q.Get("building"),
		MinCapacity: minCapacity,
		AVOnly:      q.Get("avOnly") == "true",
		DocCamOnly:  q.Get("docCamOnly") == "true",
		Sort:        catalog.SortOption(q.Get("sort")),
	}

	json.NewEncoder(w).Encode(h.catalog.FilterRooms(filter))
}

// getRoom handles GET /api/rooms/{roomID}
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	room, ok := h.catalog.Get(roomID)
	if !ok {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(room)
}

// listBuildings handles GET /api/rooms/buildings
func (h *RoomHandler) listBuildings(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.catalog.Buildings())
}
