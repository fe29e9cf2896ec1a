package models

import "strings"

// Room represents a bookable physical room from the catalog
type Room struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Building       string            `json:"building"`
	RoomNumber     string            `json:"roomNumber"`
	Capacity       int               `json:"capacity"`
	Furniture      string            `json:"furniture,omitempty"`
	AVCapable      bool              `json:"avCapable"`
	DocCamera      bool              `json:"docCamera"`
	RawFeatureCode string            `json:"rawFeatureCode,omitempty"`
	Accessible     bool              `json:"accessible"`
	Extensions     map[string]string `json:"extensions,omitempty"`
}

// DecodeFeatureCode extracts AV capabilities from a raw feature code cell.
// "SR" marks a streaming/recording-ready room, "D" a document camera.
// The checks are independent substring tests; asterisks are stripped first.
func DecodeFeatureCode(raw string) (avCapable, docCamera bool) {
	code := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "*", ""))
	return strings.Contains(code, "SR"), strings.Contains(code, "D")
}

// IsValid reports whether the room satisfies the catalog invariant:
// non-empty building and room number, positive capacity.
func (r *Room) IsValid() bool {
	return r.Building != "" && r.RoomNumber != "" && r.Capacity > 0
}

// IsStreamingRecordingCapable reports whether the room supports
// streaming and recording (the "SR" feature code).
func (r *Room) IsStreamingRecordingCapable() bool {
	return r.AVCapable
}

// HasDocumentCamera reports whether the room has a document camera.
func (r *Room) HasDocumentCamera() bool {
	return r.DocCamera
}

// IsElectronicClassroom reports whether the raw feature code marks the
// room as an electronic classroom ("E" after stripping asterisks).
func (r *Room) IsElectronicClassroom() bool {
	code := strings.ToUpper(strings.ReplaceAll(r.RawFeatureCode, "*", ""))
	return strings.Contains(code, "E")
}

// FurnitureCodes returns the individual codes from the raw furniture
// cell, which may hold several codes separated by "/".
func (r *Room) FurnitureCodes() []string {
	return SplitFurnitureCodes(r.Furniture)
}

// FurnitureLabelSet returns the room's known furniture labels keyed for
// membership tests. Unknown codes are excluded.
func (r *Room) FurnitureLabelSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, code := range r.FurnitureCodes() {
		if label, ok := FurnitureLabels[code]; ok {
			set[label] = struct{}{}
		}
	}
	return set
}
