package models

import "strings"

// FurnitureLabels maps raw furniture codes from the room sheet to
// human-readable labels. Codes not present here are unknown.
var FurnitureLabels = map[string]string{
	"FTLC": "Fixed tables with loose chairs",
	"FTSC": "Fixed tables with swivel chairs",
	"STC":  "Standard tables and chairs",
	"FTA":  "Fixed table with armchair",
	"LTA":  "Loose table with armchair",
	"THA":  "Theater armchairs",
	"MM":   "Multimedia",
	"SEM":  "Seminar",
}

// UnknownFurnitureLabel is the sentinel label for unrecognized codes.
const UnknownFurnitureLabel = "(Unknown)"

// SplitFurnitureCodes splits a raw furniture cell such as "FTLC/SEM"
// into its individual codes, dropping empty parts.
func SplitFurnitureCodes(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var codes []string
	for _, part := range strings.Split(raw, "/") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// FurnitureLabelFor maps one code to its label, or "CODE (Unknown)".
func FurnitureLabelFor(code string) string {
	if label, ok := FurnitureLabels[code]; ok {
		return label
	}
	return code + " " + UnknownFurnitureLabel
}

// FurnitureLabelsFromCodes returns the labels for every code in the raw
// furniture cell. Unknown codes yield the bare sentinel label so that
// callers can filter them out for display.
func FurnitureLabelsFromCodes(raw string) []string {
	codes := SplitFurnitureCodes(raw)
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		if label, ok := FurnitureLabels[code]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, UnknownFurnitureLabel)
		}
	}
	return labels
}

// FormatFurniture renders a raw furniture cell for display.
// The short form is label-only with " and " shortened to " & ", parts
// joined with "; ". The full form pairs each code with its label.
func FormatFurniture(raw string) (short, full string) {
	codes := SplitFurnitureCodes(raw)
	if len(codes) == 0 {
		return "", ""
	}
	shorts := make([]string, 0, len(codes))
	fulls := make([]string, 0, len(codes))
	for _, code := range codes {
		label := FurnitureLabelFor(code)
		shorts = append(shorts, strings.ReplaceAll(label, " and ", " & "))
		fulls = append(fulls, code+" - "+label)
	}
	return strings.Join(shorts, "; "), strings.Join(fulls, "; ")
}
