// Package ingest converts the two-column-block room sheet into Room
// records.
//
// Each physical row of the sheet encodes up to two rooms. The column
// layout repeats per block: feature code, building/room string,
// capacity, furniture code. A furniture legend at the end of the sheet
// is skipped. Row-level problems are recorded as rejections and never
// abort the batch.
package ingest

import (
	"regexp"
	"strings"

	"github.com/roomease/roomease/internal/models"
)

// block holds the column indices for one of the two room tables per row.
type block struct {
	feature   int
	bldgRoom  int
	capacity  int
	furniture int
}

var (
	leftBlock  = block{feature: 0, bldgRoom: 1, capacity: 2, furniture: 3}
	rightBlock = block{feature: 4, bldgRoom: 5, capacity: 6, furniture: 7}
)

// Rejection records one row/block that could not be converted.
type Rejection struct {
	RawRoom string `json:"rawRoom"`
	Side    string `json:"side"`
	Reason  string `json:"reason"`
}

// Rejection reasons.
const (
	ReasonMissingRoom       = "missing room"
	ReasonCapacityNotNumber = "capacity not a number"
	ReasonMissingCapacity   = "missing capacity"
	ReasonUnparsedBuilding  = "could not parse building"
)

// Result is the outcome of normalizing one sheet.
type Result struct {
	Rooms    []models.Room
	Rejected []Rejection

	// RawSeen counts every non-empty building/room string encountered,
	// admitted or not.
	RawSeen int
	// BuildingGuesses counts the distinct building codes parsed out of
	// the sheet.
	BuildingGuesses int
}

// buildingPattern matches a building code (a letter followed by one to
// five alphanumerics) and the room-number remainder.
var buildingPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]{1,5})\s+(.+)$`)

// hyphenPattern collapses hyphens, with or without surrounding spaces,
// to a single space.
var hyphenPattern = regexp.MustCompile(`\s*-\s*`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Normalize converts sheet rows into a clean room list plus a rejection
// log. The first row is treated as a header. A sheet with at most one
// row yields empty results, not an error.
func Normalize(rows [][]string) Result {
	var res Result
	if len(rows) < 2 {
		res.Rooms = []models.Room{}
		res.Rejected = []Rejection{}
		return res
	}

	// Map-keyed construction keeps first-occurrence-wins deduplication
	// explicit while rooms stay in sheet order.
	seen := make(map[string]struct{})
	buildings := make(map[string]struct{})
	res.Rooms = []models.Room{}
	res.Rejected = []Rejection{}

	for _, row := range rows[1:] {
		if isLegendRow(row) {
			continue
		}
		for _, b := range []block{leftBlock, rightBlock} {
			side := "left"
			if b == rightBlock {
				side = "right"
			}
			room, rej := extractRoom(row, b, side)
			if rej != nil {
				if rej.RawRoom != "" {
					res.RawSeen++
				}
				res.Rejected = append(res.Rejected, *rej)
				continue
			}
			res.RawSeen++
			buildings[room.Building] = struct{}{}
			if _, dup := seen[room.ID]; dup {
				continue
			}
			seen[room.ID] = struct{}{}
			res.Rooms = append(res.Rooms, *room)
		}
	}

	res.BuildingGuesses = len(buildings)
	return res
}

// isLegendRow applies the legend heuristic: "legend" in the first two
// cells, or "=" anywhere in the last cell.
func isLegendRow(row []string) bool {
	head := strings.ToLower(cell(row, 0) + cell(row, leftBlock.bldgRoom))
	if strings.Contains(head, "legend") {
		return true
	}
	if len(row) > 0 && strings.Contains(row[len(row)-1], "=") {
		return true
	}
	return false
}

func extractRoom(row []string, b block, side string) (*models.Room, *Rejection) {
	rawRoom := strings.TrimSpace(cell(row, b.bldgRoom))
	if rawRoom == "" {
		return nil, &Rejection{RawRoom: rawRoom, Side: side, Reason: ReasonMissingRoom}
	}

	capacity, ok := parseCapacity(cell(row, b.capacity))
	if !ok {
		return nil, &Rejection{RawRoom: rawRoom, Side: side, Reason: ReasonCapacityNotNumber}
	}
	if capacity <= 0 {
		return nil, &Rejection{RawRoom: rawRoom, Side: side, Reason: ReasonMissingCapacity}
	}

	building, roomNumber, ok := parseBldgRoom(rawRoom)
	if !ok {
		return nil, &Rejection{RawRoom: rawRoom, Side: side, Reason: ReasonUnparsedBuilding}
	}

	rawFeature := strings.TrimSpace(cell(row, b.feature))
	avCapable, docCamera := models.DecodeFeatureCode(rawFeature)
	furniture := strings.TrimSpace(cell(row, b.furniture))

	return &models.Room{
		ID:             building + "-" + roomNumber,
		Name:           building + " " + roomNumber,
		Building:       building,
		RoomNumber:     roomNumber,
		Capacity:       capacity,
		Furniture:      furniture,
		AVCapable:      avCapable,
		DocCamera:      docCamera,
		RawFeatureCode: rawFeature,
		Accessible:     false, // no accessibility column in the source sheet
	}, nil
}

// parseCapacity coerces a cell to a non-negative room capacity. Strings
// are stripped of everything but digits first; a cell with no digits at
// all is not a number.
func parseCapacity(raw string) (int, bool) {
	digits := strings.Builder{}
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n := 0
	for _, r := range digits.String() {
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			return 0, false
		}
	}
	return n, true
}

// parseBldgRoom normalizes and splits a building/room string such as
// "RCH 305" or "AHS - 032A" into its building code and room number.
func parseBldgRoom(raw string) (building, roomNumber string, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = hyphenPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")

	m := buildingPattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	building = strings.TrimSpace(m[1])
	roomNumber = strings.TrimSpace(m[2])
	if building == "" || roomNumber == "" {
		return "", "", false
	}
	return building, roomNumber, true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
