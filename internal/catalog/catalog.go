// Package catalog loads and queries the static room catalog produced by
// the ingestion step.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/roomease/roomease/internal/models"
)

// Catalog is the read-only room dataset loaded at startup.
type Catalog struct {
	rooms []models.Room
	byID  map[string]models.Room
}

// Load reads a JSON array of rooms from path. Invalid records are
// dropped and duplicate ids keep their first occurrence, mirroring the
// ingestion guarantees for catalogs built by other means.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var rooms []models.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(rooms), nil
}

// New builds a catalog from an in-memory room list, applying the same
// validation and first-wins deduplication as Load.
func New(rooms []models.Room) *Catalog {
	c := &Catalog{byID: make(map[string]models.Room, len(rooms))}
	for _, room := range rooms {
		if !room.IsValid() {
			continue
		}
		if _, dup := c.byID[room.ID]; dup {
			continue
		}
		c.byID[room.ID] = room
		c.rooms = append(c.rooms, room)
	}
	return c
}

// Rooms returns all rooms in catalog order. The caller must not modify
// the returned slice.
func (c *Catalog) Rooms() []models.Room {
	return c.rooms
}

// Get returns the room with the given id.
func (c *Catalog) Get(id string) (models.Room, bool) {
	room, ok := c.byID[id]
	return room, ok
}

// Len returns the number of rooms in the catalog.
func (c *Catalog) Len() int {
	return len(c.rooms)
}

// Buildings returns the distinct building codes present in the catalog,
// sorted alphabetically.
func (c *Catalog) Buildings() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, room := range c.rooms {
		if _, ok := seen[room.Building]; ok {
			continue
		}
		seen[room.Building] = struct{}{}
		out = append(out, room.Building)
	}
	sort.Strings(out)
	return out
}

// SortOption selects the ordering for filtered room listings.
type SortOption string

const (
	SortRecommended  SortOption = "recommended"
	SortCapacityLow  SortOption = "capacity-low"
	SortCapacityHigh SortOption = "capacity-high"
	SortNameAZ       SortOption = "name-az"
)

// Filter narrows and orders a room listing for the dashboard view.
type Filter struct {
	Search      string
	Building    string
	MinCapacity int
	AVOnly      bool
	DocCamOnly  bool
	Sort        SortOption
}

// FilterRooms returns the rooms passing the filter in the requested
// order. The catalog itself is never reordered.
func (c *Catalog) FilterRooms(f Filter) []models.Room {
	q := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Room
	for _, room := range c.rooms {
		if f.Building != "" && room.Building != f.Building {
			continue
		}
		if room.Capacity < f.MinCapacity {
			continue
		}
		if f.AVOnly && !room.IsStreamingRecordingCapable() {
			continue
		}
		if f.DocCamOnly && !room.HasDocumentCamera() {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(room.Name), q) &&
			!strings.Contains(strings.ToLower(room.Building), q) {
			continue
		}
		out = append(out, room)
	}

	sortRooms(out, f.Sort)
	return out
}

func sortRooms(rooms []models.Room, option SortOption) {
	switch option {
	case SortCapacityLow:
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].Capacity < rooms[j].Capacity
		})
	case SortCapacityHigh:
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].Capacity > rooms[j].Capacity
		})
	case SortNameAZ:
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].Name < rooms[j].Name
		})
	case SortRecommended:
		sort.SliceStable(rooms, func(i, j int) bool {
			if rooms[i].Building != rooms[j].Building {
				return rooms[i].Building < rooms[j].Building
			}
			return naturalLess(rooms[i].RoomNumber, rooms[j].RoomNumber)
		})
	}
}

// naturalLess compares room numbers digit-aware, so "032A" sorts before
// "305" and "9" before "10".
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aNum, aRest, aIsNum := leadingNumber(a)
		bNum, bRest, bIsNum := leadingNumber(b)
		switch {
		case aIsNum && bIsNum:
			if aNum != bNum {
				return aNum < bNum
			}
		case aIsNum != bIsNum:
			// Numbers sort before letters.
			return aIsNum
		default:
			if a[0] != b[0] {
				return a[0] < b[0]
			}
			aRest, bRest = a[1:], b[1:]
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

func leadingNumber(s string) (n int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, false
	}
	return n, s[i:], true
}
